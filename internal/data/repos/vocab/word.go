package vocab

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	types "github.com/yungbote/vocab-builder/internal/domain/vocab"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type WordRepo interface {
	List(ctx context.Context) ([]*types.Word, error)
	Create(ctx context.Context, word *types.Word) (*types.Word, error)
	GetByID(ctx context.Context, id string) (*types.Word, error)
	Update(ctx context.Context, id string, patch *types.WordPatch) (*types.Word, error)
	Delete(ctx context.Context, id string) error
}

// wordDocument is the stored shape of a Word.
type wordDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	English string             `bson:"english"`
	German  string             `bson:"german"`
}

func (d *wordDocument) toDomain() *types.Word {
	return &types.Word{ID: d.ID.Hex(), English: d.English, German: d.German}
}

type wordRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewWordRepo(db *mongo.Database, baseLog *logger.Logger) WordRepo {
	repoLog := baseLog.With("repo", "WordRepo")
	return &wordRepo{coll: db.Collection(types.Word{}.CollectionName()), log: repoLog}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", types.ErrInvalidWordID, id)
	}
	return oid, nil
}

func (wr *wordRepo) List(ctx context.Context) ([]*types.Word, error) {
	cur, err := wr.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	var docs []wordDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	results := make([]*types.Word, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toDomain())
	}
	return results, nil
}

func (wr *wordRepo) Create(ctx context.Context, word *types.Word) (*types.Word, error) {
	if word == nil {
		return nil, fmt.Errorf("create word: nil word")
	}
	doc := wordDocument{
		ID:      primitive.NewObjectID(),
		English: word.English,
		German:  word.German,
	}
	if _, err := wr.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert word: %w", err)
	}
	return doc.toDomain(), nil
}

func (wr *wordRepo) GetByID(ctx context.Context, id string) (*types.Word, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc wordDocument
	err = wr.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrWordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find word %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (wr *wordRepo) Update(ctx context.Context, id string, patch *types.WordPatch) (*types.Word, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return wr.GetByID(ctx, id)
	}

	set := bson.D{}
	if patch.English != nil {
		set = append(set, bson.E{Key: "english", Value: *patch.English})
	}
	if patch.German != nil {
		set = append(set, bson.E{Key: "german", Value: *patch.German})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc wordDocument
	err = wr.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrWordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update word %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (wr *wordRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := wr.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete word %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return types.ErrWordNotFound
	}
	wr.log.Debug("word deleted", "word_id", id)
	return nil
}
