package db_test

import (
	"context"
	"database/sql"
	"errors"
	"walletscan/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Ping", func() {
		It("should reach the database", func() {
			Expect(testDB.Ping(ctx)).To(Succeed())
		})
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("should fill the generated primary key", func() {
				record := &Test{Username: "Alice"}
				err := testDB.SaveToTable(ctx, record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23502", ConstraintName: "tests_username_not_null"})
				mock.ExpectRollback()
			})

			It("should report a constraint violation", func() {
				err := testDB.SaveToTable(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrConstraintViolation))
				Expect(err.Error()).To(ContainSubstring("tests_username_not_null"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("InsertOnConflictDoNothing", func() {
		var (
			inserted int64
			err      error
		)

		JustBeforeEach(func() {
			inserted, err = testDB.InsertOnConflictDoNothing(ctx, "username", &[]Test{
				{Username: "Alice"},
				{Username: "Bob"},
			})
		})

		When("one of the rows already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\),\(\$2\) ON CONFLICT \("username"\) DO NOTHING RETURNING "id"$`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectCommit()
			})

			It("should skip it and report only the inserted rows", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*ON CONFLICT.*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("insert on conflict")))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("WithTransaction", func() {
		When("the callback succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery(`^INSERT INTO "tests".*ON CONFLICT.*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectCommit()
			})

			It("should run every call in one transaction", func() {
				err := testDB.WithTransaction(ctx, func(ctx context.Context) error {
					if err := testDB.SaveToTable(ctx, &Test{Username: "Alice"}); err != nil {
						return err
					}
					_, err := testDB.InsertOnConflictDoNothing(ctx, "username", &[]Test{{Username: "Bob"}})
					return err
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the callback fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectRollback()
			})

			It("should roll back", func() {
				callbackErr := errors.New("callback error")
				err := testDB.WithTransaction(ctx, func(ctx context.Context) error {
					if err := testDB.SaveToTable(ctx, &Test{Username: "Alice"}); err != nil {
						return err
					}
					return callbackErr
				})
				Expect(err).To(MatchError(callbackErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		When("a record is deleted", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
					WithArgs(3).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should succeed", func() {
				err := testDB.DeleteBy(ctx, "id", 3, &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
					WithArgs(4).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.DeleteBy(ctx, "id", 4, &Test{})
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT count\(\*\) FROM "tests" WHERE username = \$1$`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		})

		It("should return the number of matching records", func() {
			count, err := testDB.CountWhere(ctx, &Test{}, "username = ?", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("FindWhere", func() {
		When("records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\) ORDER BY id DESC LIMIT \$3 OFFSET \$4$`).
					WithArgs("Alice", "Bob", 2, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(2, "Bob").
						AddRow(1, "Alice"))
			})

			It("should return the ordered page", func() {
				var results []Test
				err := testDB.FindWhere(ctx, &results, "id DESC", 1, 2, "username IN ?", []string{"Alice", "Bob"})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.FindWhere(ctx, &results, "", 0, 0, "username = ?", "Invalid")
				Expect(err).To(MatchError(ContainSubstring("getting records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
