package accounts

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Database, collectionName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

// FindByEmail returns nil without error when no account matches.
func (repo *AccountMongoRepository) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	var account models.Account
	err := repo.Collection.FindOne(ctx, bson.M{"role": role, "email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, repo.Collection.Name())
	}
	return &account, nil
}

func (repo *AccountMongoRepository) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	if account.ID == "" {
		account.ID = utils.GenerateID()
	}

	_, err := repo.Collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(account.Role.String())
		}
		return "", exceptions.ErrMongoDBInsertDocument(err, repo.Collection.Name())
	}
	return account.ID, nil
}
