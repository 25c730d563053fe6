// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=model_export.go -destination=mocks/mock_model_export.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/clinic-financial-model/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-financial-model/internal/config"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const modelExportRowsTable = "model_export_rows"

const createModelExportRowsTable = `
CREATE TABLE IF NOT EXISTS model_export_rows (
	run_id      VARCHAR(32)  NOT NULL,
	table_name  VARCHAR(32)  NOT NULL,
	position    INTEGER      NOT NULL,
	label       VARCHAR(32)  NOT NULL,
	scenario    VARCHAR(16)  NOT NULL,
	payload     JSONB        NOT NULL,
	created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (run_id, table_name, position)
)`

// ModelExportRepository grava as tabelas de uma execução como destino de exportação
type ModelExportRepository interface {
	EnsureSchema() error
	SaveResult(result *domain.ModelResult) error
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

type modelExportRepository struct {
	conn execer
}

func NewModelExportRepository(conn postgres.Conn) ModelExportRepository {
	return &modelExportRepository{
		conn: conn,
	}
}

func (r *modelExportRepository) EnsureSchema() error {
	if _, err := r.conn.Exec(createModelExportRowsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", modelExportRowsTable, err)
	}
	return nil
}

// SaveResult grava uma linha por linha de tabela; reexportar a mesma execução atualiza os valores
func (r *modelExportRepository) SaveResult(result *domain.ModelResult) error {
	sqlQuery, args, err := buildSaveResultQuery(result)
	if err != nil {
		return err
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func buildSaveResultQuery(result *domain.ModelResult) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(modelExportRowsTable).
		Columns(
			"run_id",
			"table_name",
			"position",
			"label",
			"scenario",
			"payload",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, table := range result.Tables() {
		for position, row := range table.Rows {
			payload, err := rowPayload(table, row)
			if err != nil {
				return "", nil, fmt.Errorf("erro ao serializar linha %d de %s: %w", position, table.Name, err)
			}

			query = query.Values(
				result.RunID,
				table.Name,
				position,
				row.Label,
				string(result.Scenario),
				payload,
			)
		}
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (run_id, table_name, position) DO UPDATE SET
			label = EXCLUDED.label,
			scenario = EXCLUDED.scenario,
			payload = EXCLUDED.payload,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return sqlQuery, args, nil
}

// rowPayload serializa a linha como objeto coluna -> valor; valores não finitos viram texto
func rowPayload(table domain.Table, row domain.TableRow) (string, error) {
	payload := make(map[string]interface{}, len(table.Columns))
	for i, column := range table.Columns {
		value := row.Values[i]
		if text, ok := domain.FormatNonFinite(value); ok {
			payload[column] = text
			continue
		}
		payload[column] = value
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// OpenModelExportSink conecta ao banco configurado e garante a tabela de exportação.
// O close retornado encerra a conexão.
func OpenModelExportSink(ctx context.Context, cfg config.Database) (ModelExportRepository, func() error, error) {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	repo := NewModelExportRepository(conn)
	if err := repo.EnsureSchema(); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return repo, conn.Close, nil
}
