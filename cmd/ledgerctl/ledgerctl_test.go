package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soloSnapshot = `{
  "workplaceId": "wp1",
  "partners": [{"id": "me", "name": "Me", "isSelf": true}],
  "projects": [{"id": "p1", "name": "Solo offer"}],
  "assets": [
    {"id": "bank", "name": "VND bank", "kind": "bank", "currency": "VND"},
    {"id": "ads", "name": "Ad account", "kind": "ad_account", "currency": "USD", "initialBalance": "100"}
  ],
  "commissions": [{"id": "c1", "date": "2024-05-03", "projectId": "p1", "assetId": "bank", "amount": "1000000", "currency": "VND"}],
  "adCosts": [{"id": "a1", "date": "2024-05-04", "projectId": "p1", "assetId": "ads", "amount": "10", "currency": "USD", "rate": "25000"}]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReportText(t *testing.T) {
	out, err := run(t, soloSnapshot, "report", "--period", "2024-05")
	require.NoError(t, err)
	assert.Contains(t, out, "Period 2024-05 (open)")
	assert.Contains(t, out, "Revenue       1,000,000 VND")
	assert.Contains(t, out, "Profit        750,000 VND")
}

func TestReportJSONWithTax(t *testing.T) {
	settings := writeFile(t, "tax.json", `{"method":"revenue","revenueRate":"1.5","revenueBase":"total"}`)
	out, err := run(t, soloSnapshot, "report", "-p", "2024-05", "--tax-settings", settings, "--json")
	require.NoError(t, err)

	var fin domain.PeriodFinancials
	require.NoError(t, json.Unmarshal([]byte(out), &fin))
	require.NotNil(t, fin.Tax)
	assert.True(t, decimal.NewFromInt(15000).Equal(fin.Tax.TaxPayable))
}

func TestReportServesClosedSnapshot(t *testing.T) {
	snapshot := `{"workplaceId":"wp1","closedPeriods":[{"period":"2024-04","financials":{"period":"2024-04","pnl":{"totalProfit":"42"}}}]}`
	out, err := run(t, snapshot, "report", "--period", "2024-04")
	require.NoError(t, err)
	assert.Contains(t, out, "(closed)")
	assert.Contains(t, out, "Profit        42 VND")
}

func TestReportRequiresPeriod(t *testing.T) {
	_, err := run(t, soloSnapshot, "report")
	assert.Error(t, err)

	_, err = run(t, soloSnapshot, "report", "--period", "May")
	assert.Error(t, err)
}

func TestSnapshotFromFileAndValidation(t *testing.T) {
	path := writeFile(t, "ledger.json", soloSnapshot)
	out, err := run(t, "", "validate", "--snapshot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "snapshot wp1 ok")

	bad := writeFile(t, "bad.json", `{"commissions":[{"id":"c1","date":"03/05/2024"}]}`)
	_, err = run(t, "", "validate", "-s", bad)
	assert.ErrorContains(t, err, "invalid snapshot")

	noAsset := writeFile(t, "no-asset.json", `{"commissions":[{"id":"c1","date":"2024-05-03","amount":"1","currency":"VND"}]}`)
	_, err = run(t, "", "validate", "-s", noAsset)
	assert.ErrorContains(t, err, "invalid snapshot")
}

func TestPartners(t *testing.T) {
	out, err := run(t, soloSnapshot, "partners")
	require.NoError(t, err)
	assert.Contains(t, out, "Me (me)")
}

func TestTax(t *testing.T) {
	_, err := run(t, soloSnapshot, "tax", "--period", "2024-05")
	assert.ErrorContains(t, err, "--tax-settings")

	incomplete := writeFile(t, "tax.json", `{"method":"revenue"}`)
	_, err = run(t, soloSnapshot, "tax", "--period", "2024-05", "--tax-settings", incomplete)
	assert.Error(t, err)

	settings := writeFile(t, "tax.json", `{"method":"revenue","revenueRate":"1.5","revenueBase":"total"}`)
	out, err := run(t, soloSnapshot, "tax", "--period", "2024-05", "--tax-settings", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "Tax payable      15,000 VND")
}
