package db

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/model"
)

var ErrTooManyKeys = fmt.Errorf("at most %d ids per batch", constants.MaxBatchGet)

// Store keeps analyses in a DynamoDB table keyed by PK = analysis id.
type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// Connect opens a session against endpoint, or the regular AWS endpoint
// when it is empty.
func Connect(endpoint, region, table string) (*Store, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return NewStore(dynamodb.New(sess), table), nil
}

func (s *Store) PutAnalysis(a model.Analysis) error {
	if a.ID == "" {
		return errors.New("analysis has no id")
	}
	item, err := dynamodbattribute.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshalling analysis %s: %w", a.ID, err)
	}

	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting analysis %s: %w", a.ID, err)
	}
	logging.Debug("stored analysis", logging.Fields{"id": a.ID, "table": s.table})
	return nil
}

// GetAnalyses fetches analyses by id. Ids that are not stored are absent
// from the result.
func (s *Store) GetAnalyses(ids []string) (map[string]model.Analysis, error) {
	if len(ids) > constants.MaxBatchGet {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyKeys, len(ids))
	}

	res := make(map[string]model.Analysis)

	if len(ids) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			s.table: {Keys: keys},
		},
	}
	dbres, err := s.client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("batch get from %s: %w", s.table, err)
	}
	if unprocessed := len(dbres.UnprocessedKeys); unprocessed > 0 {
		logging.Warn("batch get left keys unprocessed", logging.Fields{"table": s.table})
	}

	for _, v := range dbres.Responses[s.table] {
		var a model.Analysis
		if err := dynamodbattribute.UnmarshalMap(v, &a); err != nil {
			return nil, fmt.Errorf("unmarshalling analysis: %w", err)
		}
		res[a.ID] = a
	}

	return res, nil
}
