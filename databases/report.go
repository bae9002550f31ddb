package databases

// go generate: mockery --name ReportDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akkubatt/support-bot/models"
)

const (
	reportName  = "reports"
	counterName = "counters"

	reportSequence = "reportid"
)

// ErrAlreadyDecided is returned when a disposition update targets a
// report whose decision was already recorded. The PENDING -> decided
// transition happens exactly once; a second decision matches nothing.
var ErrAlreadyDecided = errors.New("report disposition already recorded")

// ReportDatabase contains the methods to use with the report database
type ReportDatabase interface {
	Create(ctx context.Context, report models.Report) (int, error)
	FindOne(ctx context.Context, filter interface{}) (*models.Report, error)
	ListUnsent(ctx context.Context) ([]models.Report, error)
	MarkSent(ctx context.Context, id int) error
	UpdateDisposition(ctx context.Context, id int, status models.DispositionStatus, refundAmount *float64) error
	CountByPhone(ctx context.Context, phoneNumber string) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

// Create assigns the next sequence id and inserts the report with
// sent=0, returned=PENDING and the creation timestamp.
func (c *reportDatabase) Create(ctx context.Context, report models.Report) (int, error) {
	id, err := c.nextSequence(ctx)
	if err != nil {
		return 0, err
	}

	report.ID = id
	report.Sent = 0
	report.Returned = models.DispositionPending
	report.RefundAmount = nil
	report.CreatedAt = time.Now()

	if _, err := c.db.Collection(reportName).InsertOne(ctx, report); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *reportDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Report, error) {
	report := &models.Report{}
	err := c.db.Collection(reportName).FindOne(ctx, filter).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListUnsent returns reports with sent=0, oldest first, so delivery
// stays fair across retry cycles.
func (c *reportDatabase) ListUnsent(ctx context.Context) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})

	cursor, err := c.db.Collection(reportName).Find(ctx, bson.M{"sent": 0}, opts)
	if err != nil {
		return nil, err
	}

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// MarkSent is idempotent, repeating it leaves sent=1 with no side effect.
func (c *reportDatabase) MarkSent(ctx context.Context, id int) error {
	_, err := c.db.Collection(reportName).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"sent": 1}})
	return err
}

// UpdateDisposition records the terminal decision. refundAmount is
// persisted only for approvals.
func (c *reportDatabase) UpdateDisposition(ctx context.Context, id int, status models.DispositionStatus, refundAmount *float64) error {
	set := bson.M{"returned": int(status)}
	if status == models.DispositionApproved && refundAmount != nil {
		set["refund_amount"] = *refundAmount
	}

	filter := bson.M{"id": id, "returned": int(models.DispositionPending)}
	res, err := c.db.Collection(reportName).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount() == 0 {
		return ErrAlreadyDecided
	}
	return nil
}

func (c *reportDatabase) CountByPhone(ctx context.Context, phoneNumber string) (int64, error) {
	return c.db.Collection(reportName).CountDocuments(ctx, bson.M{"phone_number": phoneNumber})
}

// nextSequence increments and returns the report id counter. The
// counter document is upserted so a fresh database starts at 1.
func (c *reportDatabase) nextSequence(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := c.db.Collection(counterName).
		FindOneAndUpdate(ctx, bson.M{"_id": reportSequence}, bson.M{"$inc": bson.M{"seq": 1}}, opts).
		Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
