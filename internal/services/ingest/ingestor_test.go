package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tradejournal/internal/models"
)

const exportHeader = "Instrument,Account,Strategy,Market pos.,Qty,Entry price,Exit price,Entry time,Exit time,Profit,Cum. net profit,Commission,MAE,MFE"

func TestIngest_WellFormedFile(t *testing.T) {
	csvData := exportHeader + "\n" +
		"MES 03-25,Sim101,ORB,Long,2,5010.25,5015.75,2025-01-06 09:31:00,2025-01-06 09:45:30,$55.00,$55.00,$2.10,($12.50),$60.00\n" +
		"MES 03-25,Sim101,ORB,Short,1,5020.00,5018.00,2025-01-06 10:02:00,2025-01-06 10:10:00,$10.00,$65.00,$1.05,,\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, result.Trades, 2)
	assert.Empty(t, result.RowErrors)

	assert.Equal(t, models.DirectionShort, result.Trades[1].Direction)
	assert.Equal(t, 65.0, result.Trades[1].CumNetProfit)
	assert.Nil(t, result.Trades[1].MAE)
}

func TestIngest_MissingRequiredColumn(t *testing.T) {
	// "Market pos." dropped from the header.
	csvData := "Instrument,Account,Qty,Entry price,Exit price,Entry time,Exit time,Profit\n" +
		"MES 03-25,Sim101,2,5010.25,5015.75,2025-01-06 09:31:00,2025-01-06 09:45:30,$55.00\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	assert.Nil(t, result)

	var schemaErr *models.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"Market pos."}, schemaErr.Missing)
}

func TestIngest_RowErrorsDoNotAbortBatch(t *testing.T) {
	csvData := exportHeader + "\n" +
		"MES 03-25,Sim101,ORB,Long,2,5010.25,5015.75,2025-01-06 09:31:00,2025-01-06 09:45:30,$55.00,$55.00,,,\n" +
		"MES 03-25,Sim101,ORB,Diagonal,2,5010.25,5015.75,2025-01-06 09:31:00,2025-01-06 09:45:30,$55.00,$55.00,,,\n" +
		"MES 03-25,Sim101,ORB,Long,xyz,5010.25,5015.75,2025-01-06 09:31:00,2025-01-06 09:45:30,$55.00,$55.00,,,\n" +
		"MES 03-25,Sim101,ORB,Short,1,5020.00,5018.00,2025-01-06 10:02:00,2025-01-06 10:10:00,$10.00,$65.00,,,\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, result.Trades, 2)
	require.Len(t, result.RowErrors, 2)

	assert.Equal(t, 2, result.RowErrors[0].Row)
	assert.Equal(t, models.RowErrInvalidDirection, result.RowErrors[0].Reason)
	assert.Equal(t, 3, result.RowErrors[1].Row)
	assert.Equal(t, models.RowErrInvalidNumber, result.RowErrors[1].Reason)
}

func TestIngest_ReconstructsCumulativeWhenColumnAbsent(t *testing.T) {
	header := "Instrument,Account,Strategy,Market pos.,Qty,Entry price,Exit price,Entry time,Exit time,Profit"
	csvData := header + "\n" +
		"MES 03-25,Sim101,ORB,Long,1,5000,5010,2025-01-06 09:00:00,2025-01-06 09:10:00,50\n" +
		"MES 03-25,Sim101,ORB,Long,1,5010,5005,2025-01-06 09:20:00,2025-01-06 09:30:00,-25\n" +
		"MES 03-25,Sim101,ORB,Long,1,5005,5012,2025-01-06 09:40:00,2025-01-06 09:50:00,35\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, result.Trades, 3)

	assert.Equal(t, 50.0, result.Trades[0].CumNetProfit)
	assert.Equal(t, 25.0, result.Trades[1].CumNetProfit)
	assert.Equal(t, 60.0, result.Trades[2].CumNetProfit)
}

func TestIngest_BlankCumulativeCellDefaultsToZero(t *testing.T) {
	// Column present but a cell blank: no reconstruction, blank means zero.
	csvData := exportHeader + "\n" +
		"MES 03-25,Sim101,ORB,Long,1,5000,5010,2025-01-06 09:00:00,2025-01-06 09:10:00,50,,,,\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, result.Trades, 1)
	assert.Equal(t, 0.0, result.Trades[0].CumNetProfit)
}

func TestIngest_HeaderWithBOM(t *testing.T) {
	csvData := "\ufeff" + exportHeader + "\n" +
		"MES 03-25,Sim101,ORB,Long,1,5000,5010,2025-01-06 09:00:00,2025-01-06 09:10:00,50,50,,,\n"

	result, err := NewIngestor(nil).Ingest(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, result.Trades, 1)
	assert.Equal(t, "MES 03-25", result.Trades[0].Instrument)
}

func TestIngest_EmptyBody(t *testing.T) {
	result, err := NewIngestor(nil).Ingest(strings.NewReader(exportHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, result.Trades)
	assert.Empty(t, result.RowErrors)
}
