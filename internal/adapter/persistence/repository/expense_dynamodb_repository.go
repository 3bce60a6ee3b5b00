package repository

import (
	"context"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultExpensesTableName = "gastos_diarios"

type expenseItem struct {
	ID             string `dynamodbav:"id"`
	DescricaoGasto string `dynamodbav:"descricao_gasto"`
	ValorGasto     string `dynamodbav:"valor_gasto"`
	CreatedBy      string `dynamodbav:"created_by,omitempty"`
	UpdatedBy      string `dynamodbav:"updated_by,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []expenseItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			expenses = append(expenses, fromExpenseItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return expenses, nil
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: e.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #descricao_gasto = :descricao_gasto, #valor_gasto = :valor_gasto, #updated_by = :updated_by"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":descricao_gasto": &types.AttributeValueMemberS{Value: e.Description},
			":valor_gasto":     &types.AttributeValueMemberS{Value: floatToString(e.Amount)},
			":updated_by":      &types.AttributeValueMemberS{Value: e.UpdatedBy},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#descricao_gasto": "descricao_gasto",
			"#valor_gasto":     "valor_gasto",
			"#updated_by":      "updated_by",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Expense{}, err
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:             e.ID,
		DescricaoGasto: e.Description,
		ValorGasto:     floatToString(e.Amount),
		CreatedBy:      e.CreatedBy,
		UpdatedBy:      e.UpdatedBy,
		CreatedAt:      timeToString(e.CreatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:          it.ID,
		Description: it.DescricaoGasto,
		Amount:      floatFromString(it.ValorGasto),
		CreatedBy:   it.CreatedBy,
		UpdatedBy:   it.UpdatedBy,
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
