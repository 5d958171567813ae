package queries_test

import (
	"context"
	"testing"
	"time"

	"campusdrop/internal/adapters/out/postgres/itemrepo"
	"campusdrop/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetItemsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetItemsQueryHandler
}

func (suite *GetItemsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&itemrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetItemsQueryHandler(db)
}

func (suite *GetItemsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetItemsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetItemsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetItemsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetItemsQueryHandlerTestSuite) TestHandle_ReturnsAvailableItemsOrderedByCategory() {
	pickupID := uuid.New()
	suite.insertItem("Glass Vase", "decor", &pickupID, 1.5, true, true)
	suite.insertItem("Coffee Beans", "food", nil, 0.5, false, true)
	suite.insertItem("Textbook", "books", nil, 2.0, false, true)

	query := queries.NewGetItemsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Textbook", result[0].Name)
	suite.Equal("books", result[0].Category)
	suite.Nil(result[0].PickupLocationID)

	suite.Equal("Glass Vase", result[1].Name)
	suite.True(result[1].Fragile)
	suite.Require().NotNil(result[1].PickupLocationID)
	suite.Equal(pickupID.String(), result[1].PickupLocationID.String())
	suite.InDelta(1.5, result[1].WeightKg, 0.001)

	suite.Equal("Coffee Beans", result[2].Name)
	suite.Equal("food", result[2].Category)
}

func (suite *GetItemsQueryHandlerTestSuite) TestHandle_FiltersOutUnavailableItems() {
	suite.insertItem("Coffee Beans", "food", nil, 0.5, false, true)
	suite.insertItem("Sold Out Mug", "decor", nil, 0.3, false, false)

	query := queries.NewGetItemsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Coffee Beans", result[0].Name)
}

func (suite *GetItemsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetItemsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetItemsQuery constructor")
}

func (suite *GetItemsQueryHandlerTestSuite) insertItem(
	name, category string,
	pickupLocationID *uuid.UUID,
	weightKg float64,
	fragile, available bool,
) {
	dto := itemrepo.ItemDTO{
		ID:               uuid.New(),
		Name:             name,
		Category:         category,
		PickupLocationID: pickupLocationID,
		WeightKg:         weightKg,
		Fragile:          fragile,
		Available:        available,
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func TestGetItemsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetItemsQueryHandlerTestSuite))
}
