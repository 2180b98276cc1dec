package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/pkg/metrics"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM routes"))
	assert.Equal(t, "update", operationOf("  UPDATE departures SET x = 1"))
	assert.Equal(t, "with", operationOf("WITH taken AS (SELECT 1) SELECT * FROM taken"))
	assert.Equal(t, "other", operationOf("LOCK TABLE departures"))
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	wrapped := &SqlTxWrapper{Tx: tx}
	txCtx := WithTx(ctx, wrapped)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(txCtx, db))
}

func TestDB_RecordsQueryDuration(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	db := Wrap(sqlDB, m)

	mock.ExpectExec("UPDATE departures").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = db.ExecContext(context.Background(), "UPDATE departures SET status = $1", "BOARDING")
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	require.NoError(t, mock.ExpectationsWereMet())
}
