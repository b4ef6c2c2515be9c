package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableDDL(t *testing.T, table string) string {
	t.Helper()

	prefix := "CREATE TABLE IF NOT EXISTS " + table + " "
	for _, statement := range schema {
		trimmed := strings.TrimSpace(statement)
		if strings.HasPrefix(trimmed, prefix) {
			return trimmed
		}
	}

	t.Fatalf("tabela %s não encontrada no schema", table)
	return ""
}

// O schema precisa definir exatamente as colunas que os repositórios leem e
// escrevem; um rename de um lado só quebra o serviço inteiro no primeiro ciclo.
func TestSchema_ColumnsMatchRepositories(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
	}{
		{
			name:  "sync_schedules cobre o bookkeeping e o claim do motor",
			table: "sync_schedules",
			columns: []string{
				"id", "user_id", "provider", "sync_type", "frequency",
				"is_active", "in_flight", "claimed_at",
				"last_sync_at", "next_sync_at",
				"created_at", "updated_at",
			},
		},
		{
			name:  "integrations cobre a resolução de credenciais",
			table: "integrations",
			columns: []string{
				"id", "user_id", "provider", "status",
				"external_account_id", "credentials_ref",
			},
		},
		{
			name:  "campaigns cobre o upsert estrutural dos adapters",
			table: "campaigns",
			columns: []string{
				"id", "account_id", "provider", "external_id",
				"name", "objective", "status",
			},
		},
		{
			name:  "campaign_metrics cobre as linhas brutas e o recorte de agregação",
			table: "campaign_metrics",
			columns: []string{
				"id", "account_id", "provider", "campaign_id",
				"ad_set_id", "ad_id", "date",
				"impressions", "clicks", "spend", "conversions", "results", "messages",
			},
		},
		{
			name:  "metric_breakdowns cobre as linhas segmentadas",
			table: "metric_breakdowns",
			columns: []string{
				"id", "account_id", "provider", "campaign_id", "date",
				"breakdown_type", "breakdown_value",
				"impressions", "clicks", "spend", "conversions", "results", "messages",
			},
		},
		{
			name:  "spending_alerts cobre as regras lidas pelo avaliador",
			table: "spending_alerts",
			columns: []string{
				"id", "user_id", "name", "metric_type", "condition", "threshold",
				"provider", "account_id", "campaign_id",
				"lookback_days", "is_active", "last_triggered_at",
			},
		},
		{
			name:  "alert_triggers cobre o ciclo de vida do trigger",
			table: "alert_triggers",
			columns: []string{
				"id", "alert_id", "current_amount", "triggered_at", "resolved_at",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddl := tableDDL(t, tt.table)

			for _, column := range tt.columns {
				assert.Contains(t, ddl, "\n\t\t"+column+" ",
					"coluna %s ausente na tabela %s", column, tt.table)
			}
		})
	}
}

func TestSchema_EnforcesClaimAndTriggerInvariants(t *testing.T) {
	joined := strings.Join(schema, "\n")

	// Índice parcial que torna a listagem de elegíveis barata
	assert.Contains(t, joined, "idx_sync_schedules_due")
	assert.Contains(t, joined, "WHERE is_active AND NOT in_flight")

	// No máximo um trigger aberto por regra
	assert.Contains(t, joined, "CREATE UNIQUE INDEX IF NOT EXISTS idx_alert_triggers_open")
	assert.Contains(t, joined, "WHERE resolved_at IS NULL")
}
