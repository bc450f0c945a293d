package main

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run(&out))

	assert.Equal(t, "Paid $100 using credit card 1234-5678-9012-3456\n"+
		"Paid $200 using PayPal account user@example.com\n"+
		"Paid $300 using bank transfer to account 1234567890\n", out.String())
}

func TestRunRecordsMetrics(t *testing.T) {
	require.NoError(t, xmetrics.InitGlobal(demoName))

	var out bytes.Buffer
	require.NoError(t, run(&out))

	values, err := xmetrics.Snapshot(prometheus.DefaultGatherer, demoName)
	require.NoError(t, err)
	assert.Equal(t, float64(1), values["payment_paid_credit_card"])
	assert.Equal(t, float64(1), values["payment_paid_paypal"])
	assert.Equal(t, float64(1), values["payment_paid_bank_transfer"])
	assert.Equal(t, float64(200), values["payment_amount_paypal"])
}
