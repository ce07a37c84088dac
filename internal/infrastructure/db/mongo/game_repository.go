package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/ports"
)

const gamesCollection = "juegos"

type GameRepository struct {
	coll *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{coll: db.Collection(gamesCollection)}
}

type gameDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"titulo"`
	Genre       string             `bson:"genero,omitempty"`
	Platforms   []string           `bson:"plataformas,omitempty"`
	Developer   string             `bson:"desarrollador,omitempty"`
	ReleaseYear string             `bson:"lanzamiento,omitempty"`
	Modes       []string           `bson:"modo,omitempty"`
	Score       *float64           `bson:"puntuacion,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d gameDoc) toDomain() *domain.Game {
	return &domain.Game{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		Platforms:   d.Platforms,
		Developer:   d.Developer,
		ReleaseYear: d.ReleaseYear,
		Modes:       d.Modes,
		Score:       d.Score,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	now := time.Now().UTC()
	doc := gameDoc{
		Title:       game.Title,
		Genre:       game.Genre,
		Platforms:   game.Platforms,
		Developer:   game.Developer,
		ReleaseYear: game.ReleaseYear,
		Modes:       game.Modes,
		Score:       game.Score,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGameExists
		}
		return nil, fmt.Errorf("insert game: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GameRepository) FindByTitle(ctx context.Context, title string) (*domain.Game, error) {
	var doc gameDoc
	if err := r.coll.FindOne(ctx, bson.M{"titulo": title}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cursor.Close(ctx)

	var games []*domain.Game
	for cursor.Next(ctx) {
		var doc gameDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		games = append(games, doc.toDomain())
	}
	return games, cursor.Err()
}

func (r *GameRepository) UpdateByTitle(ctx context.Context, title string, patch ports.GamePatch) (*domain.Game, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["titulo"] = *patch.Title
	}
	if patch.Genre != nil {
		set["genero"] = *patch.Genre
	}
	if patch.Platforms != nil {
		set["plataformas"] = patch.Platforms
	}
	if patch.Developer != nil {
		set["desarrollador"] = *patch.Developer
	}
	if patch.ReleaseYear != nil {
		set["lanzamiento"] = *patch.ReleaseYear
	}
	if patch.Modes != nil {
		set["modo"] = patch.Modes
	}
	if patch.Score != nil {
		set["puntuacion"] = *patch.Score
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc gameDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"titulo": title}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGameExists
		}
		return nil, fmt.Errorf("update game: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GameRepository) DeleteByTitle(ctx context.Context, title string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"titulo": title})
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

// EnsureIndexes creates the unique title index.
func (r *GameRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "titulo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
