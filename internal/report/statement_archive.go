package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	reporterrors "go-shopbook/internal/report/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statementsCollection = "statements"

// Statement is a rendered statement file kept for later download.
type Statement struct {
	ShopID      string    `bson:"shop_id" json:"shop_id"`
	PeriodLabel string    `bson:"period_label" json:"period_label"`
	FileName    string    `bson:"file_name" json:"file_name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Content     []byte    `bson:"content" json:"-"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

//go:generate mockgen -source=statement_archive.go -destination=mock/statement_archive_mock.go -package=mock
type ArchiveRepository interface {
	// Save keeps one statement per (shop, period); a newer one replaces it.
	Save(ctx context.Context, statement Statement) error
	Find(ctx context.Context, shopID, periodLabel string) (Statement, error)
}

type mongoArchiveRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

func NewMongoArchiveRepository(client *mongo.Client, dbName string) ArchiveRepository {
	return &mongoArchiveRepository{
		client:   client,
		dbName:   dbName,
		collName: statementsCollection,
	}
}

func (r *mongoArchiveRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

func (r *mongoArchiveRepository) Save(ctx context.Context, statement Statement) error {
	filter := bson.M{"shop_id": statement.ShopID, "period_label": statement.PeriodLabel}
	_, err := r.collection().ReplaceOne(ctx, filter, statement, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save statement: %w", err)
	}
	return nil
}

func (r *mongoArchiveRepository) Find(ctx context.Context, shopID, periodLabel string) (Statement, error) {
	var statement Statement
	err := r.collection().
		FindOne(ctx, bson.M{"shop_id": shopID, "period_label": periodLabel}).
		Decode(&statement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Statement{}, reporterrors.ErrStatementNotFound
	}
	if err != nil {
		return Statement{}, fmt.Errorf("failed to load statement: %w", err)
	}
	return statement, nil
}

// EnsureIndexes creates the unique (shop_id, period_label) index.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	_, err := client.Database(dbName).Collection(statementsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "period_label", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_statement_shop_period"),
	})
	return err
}
