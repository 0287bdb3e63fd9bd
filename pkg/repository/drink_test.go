package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/Barista/pkg/model"
	"droscher.com/Barista/pkg/repository"
)

type DrinkTestSuite struct {
	RepositorySuite
}

func TestDrinkTestSuite(t *testing.T) {
	suite.Run(t, new(DrinkTestSuite))
}

func (suite *DrinkTestSuite) TestGetDrinks_OrdersByID() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drinks" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "recipe"}).
			AddRow(uint(1), "water", `[{"color":"blue","name":"water","parts":1}]`).
			AddRow(uint(2), "Latte", `[{"color":"brown","name":"espresso","parts":1},{"color":"white","name":"milk","parts":3}]`))

	drinks, err := suite.repository.GetDrinks(context.Background())
	suite.Require().NoError(err)
	suite.Len(drinks, 2)
	suite.Equal(uint(1), drinks[0].ID)
	suite.Equal("water", drinks[0].Title)
	suite.Equal(model.Recipe{{Color: "blue", Name: "water", Parts: 1}}, drinks[0].Recipe)
	suite.Equal("Latte", drinks[1].Title)
	suite.Len(drinks[1].Recipe, 2)
	suite.Equal("milk", drinks[1].Recipe[1].Name)
}

func (suite *DrinkTestSuite) TestGetDrinks_EmptyTable() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drinks" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "recipe"}))

	drinks, err := suite.repository.GetDrinks(context.Background())
	suite.Require().NoError(err)
	suite.Empty(drinks)
}

func (suite *DrinkTestSuite) TestGetDrinks_LogsErrors() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errors.New("connection refused"))

	drinks, err := suite.repository.GetDrinks(context.Background())
	suite.Require().Error(err)
	suite.Nil(drinks)

	logs := suite.observedLogs.FilterMessage("error listing drinks").All()
	suite.Require().Len(logs, 1)
	suite.Equal("connection refused", logs[0].ContextMap()["error"])
}

func (suite *DrinkTestSuite) TestGetDrinkByID_FindsDrink() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "drinks" WHERE "drinks"."id" = \$1 (.+)`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "recipe"}).
			AddRow(uint(7), "Mocha", `[{"color":"brown","name":"chocolate","parts":1}]`))

	drink, err := suite.repository.GetDrinkByID(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(uint(7), drink.ID)
	suite.Equal("Mocha", drink.Title)
	suite.Equal(model.Recipe{{Color: "brown", Name: "chocolate", Parts: 1}}, drink.Recipe)
}

func (suite *DrinkTestSuite) TestGetDrinkByID_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	drink, err := suite.repository.GetDrinkByID(context.Background(), 100)
	suite.Require().ErrorIs(err, repository.ErrDrinkNotFound)
	suite.Nil(drink)
}

func (suite *DrinkTestSuite) TestAddDrink_AddsDrink() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "drinks" ("title","recipe") VALUES ($1,$2) RETURNING "id"`)).
		WithArgs("Water", `[{"color":"blue","name":"water","parts":1}]`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	drink, err := suite.repository.AddDrink(context.Background(), model.Drink{
		Title:  "Water",
		Recipe: model.Recipe{{Color: "blue", Name: "water", Parts: 1}},
	})
	suite.Require().NoError(err)
	suite.Equal(uint(1), drink.ID)
	suite.Equal("Water", drink.Title)
}

func (suite *DrinkTestSuite) TestAddDrink_DuplicateTitle() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "drinks"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_drinks_title"`))
	suite.mock.ExpectRollback()

	drink, err := suite.repository.AddDrink(context.Background(), model.Drink{Title: "Water"})
	suite.Require().ErrorContains(err, "duplicate key")
	suite.Nil(drink)
	suite.Equal(1, suite.observedLogs.FilterMessage("error adding drink").Len())
}

func (suite *DrinkTestSuite) TestUpdateDrink_UpdatesTitleAndRecipe() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "drinks" SET "title"=\$1,"recipe"=\$2 WHERE (.*)"id" = \$3`).
		WithArgs("Flat White", `[{"color":"white","name":"milk","parts":2}]`, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	drink := &model.Drink{ID: 3, Title: "Flat White", Recipe: model.Recipe{{Color: "white", Name: "milk", Parts: 2}}}

	updated, err := suite.repository.UpdateDrink(context.Background(), drink)
	suite.Require().NoError(err)
	suite.Equal(drink, updated)
}

func (suite *DrinkTestSuite) TestUpdateDrink_MissingRow() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "drinks"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	updated, err := suite.repository.UpdateDrink(context.Background(), &model.Drink{ID: 3, Title: "Gone"})
	suite.Require().ErrorIs(err, repository.ErrDrinkNotFound)
	suite.Nil(updated)
}

func (suite *DrinkTestSuite) TestDeleteDrink_DeletesDrink() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "drinks" WHERE "drinks"."id" = $1`)).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.Require().NoError(suite.repository.DeleteDrink(context.Background(), 4))
}

func (suite *DrinkTestSuite) TestDeleteDrink_MissingRow() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "drinks"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	suite.Require().ErrorIs(suite.repository.DeleteDrink(context.Background(), 4), repository.ErrDrinkNotFound)
}

func (suite *DrinkTestSuite) TestDeleteDrink_LogsErrors() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "drinks"`).WillReturnError(errors.New("connection reset"))
	suite.mock.ExpectRollback()

	err := suite.repository.DeleteDrink(context.Background(), 4)
	suite.Require().ErrorContains(err, "connection reset")
	suite.Equal(1, suite.observedLogs.FilterMessage("error deleting drink").Len())
}
