package models

import (
	"time"

	"github.com/HatiCode/jsondate/pkg/datetime"
)

// Document is a decoded JSON object.
type Document = map[string]any

const (
	KeyAuthor     = "author"
	KeyVersion    = "version"
	KeyLastUpdate = "last_update"
	KeyList       = "list"
	KeyEmbed      = "embed"
)

// DocumentKeys lists the top-level keys of the example document.
var DocumentKeys = []string{KeyAuthor, KeyVersion, KeyLastUpdate, KeyList, KeyEmbed}

const ExampleJSON = `{"embed": {"hello": "world"}, "version": 1, "list": [1, 2, "string", 4], "last_update": "2013-04-04T14:09:51.648658", "author": "Ben Mackey"}`

// ExampleDynamoDBJSON is ExampleJSON in DynamoDB JSON wire format. Times are
// RFC 3339 strings there, so last_update carries a zone.
const ExampleDynamoDBJSON = `{"embed": {"M": {"hello": {"S": "world"}}}, "version": {"N": "1"}, "list": {"L": [{"N": "1"}, {"N": "2"}, {"S": "string"}, {"N": "4"}]}, "last_update": {"S": "2013-04-04T14:09:51.648658Z"}, "author": {"S": "Ben Mackey"}}`

func NewExampleDocument(now time.Time) Document {
	return Document{
		KeyAuthor:     "Ben Mackey",
		KeyVersion:    1,
		KeyLastUpdate: datetime.Naive(now),
		KeyList:       []any{1, 2, "string", 4},
		KeyEmbed:      map[string]any{"hello": "world"},
	}
}

// ExampleDocument stamps the example with the current local wall clock.
func ExampleDocument() Document {
	return NewExampleDocument(time.Now())
}

// Fixtures is the read-only input shared by every strategy in a run.
type Fixtures struct {
	Document     Document
	JSON         []byte
	DynamoDBJSON []byte
}

func NewFixtures(doc Document) *Fixtures {
	return &Fixtures{
		Document:     doc,
		JSON:         []byte(ExampleJSON),
		DynamoDBJSON: []byte(ExampleDynamoDBJSON),
	}
}

func DefaultFixtures() *Fixtures {
	return NewFixtures(ExampleDocument())
}
