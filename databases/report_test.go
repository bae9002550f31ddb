package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akkubatt/support-bot/databases"
	"github.com/akkubatt/support-bot/databases/mocks"
	"github.com/akkubatt/support-bot/models"
)

func TestReportDatabase_Create(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	counters := &mocks.CollectionHelper{}
	reports := &mocks.CollectionHelper{}
	seqResult := &mocks.SingleResultHelper{}

	seqResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out := args.Get(0).(*struct {
			Seq int `bson:"seq"`
		})
		out.Seq = 7
	})

	counters.On("FindOneAndUpdate", mock.Anything,
		bson.M{"_id": "reportid"}, bson.M{"$inc": bson.M{"seq": 1}}, mock.Anything).
		Return(seqResult)

	var inserted models.Report
	reports.On("InsertOne", mock.Anything, mock.Anything).
		Return("ok", nil).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(models.Report)
		})

	dbHelper.On("Collection", "counters").Return(counters)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	id, err := reportDB.Create(context.Background(), models.Report{
		UserID:        42,
		Photo:         "photos/abc.jpg",
		RentalTime:    "12.06 14:30",
		ScooterNumber: "0042",
		PhoneNumber:   "+79991234567",
		CardNumber:    "1234",
		Description:   "scooter stopped mid ride",
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, 7, inserted.ID)
	assert.Equal(t, int64(42), inserted.UserID)
	assert.Equal(t, 0, inserted.Sent)
	assert.Equal(t, models.DispositionPending, inserted.Returned)
	assert.Nil(t, inserted.RefundAmount)
	assert.False(t, inserted.CreatedAt.IsZero())
}

func TestReportDatabase_CreateSequenceError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	counters := &mocks.CollectionHelper{}
	seqResult := &mocks.SingleResultHelper{}

	seqResult.On("Decode", mock.Anything).Return(errors.New("mocked-db-error"))
	counters.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(seqResult)
	dbHelper.On("Collection", "counters").Return(counters)

	reportDB := databases.NewReportDatabase(dbHelper)

	id, err := reportDB.Create(context.Background(), models.Report{UserID: 42})

	assert.Equal(t, 0, id)
	assert.EqualError(t, err, "mocked-db-error")
}

func TestReportDatabase_ListUnsent(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	expected := []models.Report{
		{ID: 1, UserID: 42, Sent: 0},
		{ID: 2, UserID: 43, Sent: 0},
	}

	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out := args.Get(1).(*[]models.Report)
		*out = expected
	})
	reports.On("Find", mock.Anything, bson.M{"sent": 0}, mock.Anything).Return(cursor, nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	got, err := reportDB.ListUnsent(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReportDatabase_MarkSent(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	result := &mocks.UpdateResultHelper{}

	reports.On("UpdateOne", mock.Anything,
		bson.M{"id": 7}, bson.M{"$set": bson.M{"sent": 1}}).
		Return(result, nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	assert.NoError(t, reportDB.MarkSent(context.Background(), 7))
}

func TestReportDatabase_UpdateDispositionApproved(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	result := &mocks.UpdateResultHelper{}

	amount := 150.50
	result.On("MatchedCount").Return(int64(1))
	reports.On("UpdateOne", mock.Anything,
		bson.M{"id": 7, "returned": 0},
		bson.M{"$set": bson.M{"returned": 1, "refund_amount": 150.50}}).
		Return(result, nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	err := reportDB.UpdateDisposition(context.Background(), 7, models.DispositionApproved, &amount)

	assert.NoError(t, err)
}

func TestReportDatabase_UpdateDispositionRejected(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	result := &mocks.UpdateResultHelper{}

	result.On("MatchedCount").Return(int64(1))
	reports.On("UpdateOne", mock.Anything,
		bson.M{"id": 8, "returned": 0},
		bson.M{"$set": bson.M{"returned": 2}}).
		Return(result, nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	err := reportDB.UpdateDisposition(context.Background(), 8, models.DispositionRejected, nil)

	assert.NoError(t, err)
}

func TestReportDatabase_UpdateDispositionAlreadyDecided(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	result := &mocks.UpdateResultHelper{}

	result.On("MatchedCount").Return(int64(0))
	reports.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	err := reportDB.UpdateDisposition(context.Background(), 7, models.DispositionRejected, nil)

	assert.ErrorIs(t, err, databases.ErrAlreadyDecided)
}

func TestReportDatabase_CountByPhone(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}

	reports.On("CountDocuments", mock.Anything, bson.M{"phone_number": "+79991234567"}).
		Return(int64(3), nil)
	dbHelper.On("Collection", "reports").Return(reports)

	reportDB := databases.NewReportDatabase(dbHelper)

	n, err := reportDB.CountByPhone(context.Background(), "+79991234567")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
