package repository

import (
	"context"
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultOrdersTableName = "orders_storage"

// serviceOrderItem is the persisted (snake_case) shape of a ServiceOrder.
// The to/from mapping functions are pure and total in both directions.
type serviceOrderItem struct {
	ID              string   `dynamodbav:"id"`
	CarroNumero     int      `dynamodbav:"carro_numero"`
	DataHora        string   `dynamodbav:"data_hora"`
	Responsavel     string   `dynamodbav:"responsavel"`
	CarroModelo     string   `dynamodbav:"carro_modelo"`
	CarroPlaca      string   `dynamodbav:"carro_placa"`
	TipoVeiculo     []string `dynamodbav:"tipo_veiculo"`
	Servicos        []string `dynamodbav:"servicos"`
	Total           string   `dynamodbav:"total"`
	Caixinha        string   `dynamodbav:"caixinha"`
	FormaPagamento  string   `dynamodbav:"forma_pagamento"`
	DescricaoOutros string   `dynamodbav:"descricao_outros"`
	Observacoes     string   `dynamodbav:"observacoes"`
	Status          string   `dynamodbav:"status"`
	IsDeleted       bool     `dynamodbav:"is_deleted"`
	NotaFiscal      string   `dynamodbav:"nota_fiscal,omitempty"`
	NotaFiscalURL   string   `dynamodbav:"nota_fiscal_url,omitempty"`
	NotaFiscalPath  string   `dynamodbav:"nota_fiscal_path,omitempty"`
	CreatedBy       string   `dynamodbav:"created_by,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Soft delete is a flag flip (is_deleted); the trash and the active view read
// from the same table.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return orders, nil
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// The conditional put doubles as a duplicate-submission guard: replaying
	// the same create can never overwrite an existing record.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) SetDeleted(ctx context.Context, id string, deleted bool) (entities.ServiceOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_deleted = :is_deleted, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_deleted": &types.AttributeValueMemberBOOL{Value: deleted},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_deleted": "is_deleted",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:              o.ID,
		CarroNumero:     o.SequenceNumber,
		DataHora:        timeToString(o.Timestamp),
		Responsavel:     o.ResponsiblePerson,
		CarroModelo:     o.VehicleModel,
		CarroPlaca:      o.VehiclePlate,
		TipoVeiculo:     vehicleTypesToStrings(o.VehicleTypes),
		Servicos:        servicesToStrings(o.Services),
		Total:           floatToString(o.Total),
		Caixinha:        floatToString(o.TipAmount),
		FormaPagamento:  string(o.PaymentMethod),
		DescricaoOutros: o.PaymentOtherDescription,
		Observacoes:     o.Notes,
		Status:          string(o.Status),
		IsDeleted:       o.Deleted,
		CreatedBy:       o.CreatedBy,
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
	if o.InvoiceAttachment != nil {
		it.NotaFiscal = o.InvoiceAttachment.Name
		it.NotaFiscalURL = o.InvoiceAttachment.URL
		it.NotaFiscalPath = o.InvoiceAttachment.StoragePath
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                      it.ID,
		SequenceNumber:          it.CarroNumero,
		Timestamp:               timeFromString(it.DataHora),
		ResponsiblePerson:       it.Responsavel,
		VehicleModel:            it.CarroModelo,
		VehiclePlate:            it.CarroPlaca,
		VehicleTypes:            stringsToVehicleTypes(it.TipoVeiculo),
		Services:                stringsToServices(it.Servicos),
		Total:                   floatFromString(it.Total),
		TipAmount:               floatFromString(it.Caixinha),
		PaymentMethod:           entities.PaymentMethod(it.FormaPagamento),
		PaymentOtherDescription: it.DescricaoOutros,
		Notes:                   it.Observacoes,
		Status:                  entities.OrderStatus(it.Status),
		Deleted:                 it.IsDeleted,
		CreatedBy:               it.CreatedBy,
		CreatedAt:               timeFromString(it.CreatedAt),
		UpdatedAt:               timeFromString(it.UpdatedAt),
	}
	if it.NotaFiscal != "" || it.NotaFiscalURL != "" || it.NotaFiscalPath != "" {
		o.InvoiceAttachment = &entities.InvoiceAttachment{
			Name:        it.NotaFiscal,
			URL:         it.NotaFiscalURL,
			StoragePath: it.NotaFiscalPath,
		}
	}
	return o
}

func vehicleTypesToStrings(in []entities.VehicleType) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToVehicleTypes(in []string) []entities.VehicleType {
	if in == nil {
		return nil
	}
	out := make([]entities.VehicleType, len(in))
	for i, v := range in {
		out[i] = entities.VehicleType(v)
	}
	return out
}

func servicesToStrings(in []entities.ServiceName) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToServices(in []string) []entities.ServiceName {
	if in == nil {
		return nil
	}
	out := make([]entities.ServiceName, len(in))
	for i, v := range in {
		out[i] = entities.ServiceName(v)
	}
	return out
}
