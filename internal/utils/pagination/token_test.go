package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneypot/moneypot/internal/utils/pagination"
)

func TestTokenRoundTrip(t *testing.T) {
	txnDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 1, 13, 45, 30, 123456789, time.UTC)
	transactionID := "6f1c9a0e-6f1d-4a58-9f3e-0f6f2b2c9d11"

	token := pagination.EncodeToken(txnDate, createdAt, transactionID)
	gotDate, gotCreated, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotDate.Equal(txnDate))
	assert.True(t, gotCreated.Equal(createdAt))
	assert.Equal(t, transactionID, gotID)
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, _, err := pagination.DecodeToken("not-base64!!!")

	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2026-05-01T00:00:00Z"))

	_, _, _, err := pagination.DecodeToken(token)

	assert.Error(t, err)
}

func TestDecodeToken_MissingTransactionID(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2026-05-01T00:00:00Z|2026-05-01T13:45:30Z|"))

	_, _, _, err := pagination.DecodeToken(token)

	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|2026-05-01T00:00:00Z|txn-1"))

	_, _, _, err := pagination.DecodeToken(token)

	assert.Error(t, err)
}
