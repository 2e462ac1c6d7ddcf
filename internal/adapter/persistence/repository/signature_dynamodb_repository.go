package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSignaturesTableName = "process_signatures"

type signatureItem struct {
	ProcessID  int64  `dynamodbav:"process_id"`
	Data       string `dynamodbav:"data"`
	CapturedBy int64  `dynamodbav:"captured_by"`
	CapturedAt string `dynamodbav:"captured_at"`
}

// SignatureDynamoRepository persists client sign-offs in DynamoDB.
//
// Table requirements:
//   - PK: process_id (number)
//
// One signature per process: saving again overwrites the previous capture.
type SignatureDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignatureRepository = (*SignatureDynamoRepository)(nil)

func NewSignatureDynamoRepository(ddb *dynamodb.Client, tableName string) *SignatureDynamoRepository {
	if tableName == "" {
		tableName = defaultSignaturesTableName
	}
	return &SignatureDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SignatureDynamoRepository) Save(ctx context.Context, s entities.Signature) error {
	av, err := attributevalue.MarshalMap(toSignatureItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SignatureDynamoRepository) GetByProcessID(ctx context.Context, processID int64) (entities.Signature, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"process_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(processID, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Signature{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Signature{}, false, nil
	}

	var it signatureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Signature{}, false, err
	}
	return fromSignatureItem(it), true, nil
}

func toSignatureItem(s entities.Signature) signatureItem {
	return signatureItem{
		ProcessID:  s.ProcessID,
		Data:       s.Data,
		CapturedBy: s.CapturedBy,
		CapturedAt: s.CapturedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSignatureItem(it signatureItem) entities.Signature {
	capturedAt, _ := time.Parse(time.RFC3339Nano, it.CapturedAt)
	return entities.Signature{
		ProcessID:  it.ProcessID,
		Data:       it.Data,
		CapturedBy: it.CapturedBy,
		CapturedAt: capturedAt,
	}
}
