// Comando model executa a projeção em lote a partir de um arquivo de premissas
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-financial-model/infrastructure/exporter"
	"github.com/vfg2006/clinic-financial-model/infrastructure/inputfile"
	"github.com/vfg2006/clinic-financial-model/infrastructure/repository"
	"github.com/vfg2006/clinic-financial-model/internal/config"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

const sinkPostgres = "postgres"

type options struct {
	inputs     string
	outPrefix  string
	format     string
	precision  string
	scenario   string
	sink       string
	issueToken string
	role       string
}

// openSink é substituído nos testes
var openSink = repository.OpenModelExportSink

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar o modelo")
	}
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("model", flag.ContinueOnError)
	fs.StringVar(&opts.inputs, "inputs", "", "arquivo de premissas (.json, .yaml, .hjson ou .toml)")
	fs.StringVar(&opts.outPrefix, "out_prefix", "output", "prefixo dos arquivos gerados")
	fs.StringVar(&opts.format, "format", "", "formato dos arquivos: csv ou xlsx (padrão EXPORT_FORMAT)")
	fs.StringVar(&opts.precision, "precision", "", "precisão dos valores: rounded ou full (padrão EXPORT_PRECISION)")
	fs.StringVar(&opts.scenario, "scenario", string(domain.ScenarioBase), "cenário: base, upside ou downside")
	fs.StringVar(&opts.sink, "sink", "", "destino adicional das tabelas: postgres")
	fs.StringVar(&opts.issueToken, "issue-token", "", "emite um token para o titular informado e encerra")
	fs.StringVar(&opts.role, "role", domain.RoleAdmin, "papel do token emitido")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.issueToken == "" && opts.inputs == "" {
		return opts, errors.New("informe -inputs ou -issue-token")
	}
	if opts.sink != "" && opts.sink != sinkPostgres {
		return opts, errors.Errorf("destino desconhecido: %s", opts.sink)
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}
	log.Configure(cfg.App.LogLevel)

	if opts.issueToken != "" {
		token, err := authenticating.NewService(cfg.Auth).IssueToken(opts.issueToken, opts.role)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, token)
		return err
	}

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Export.Format
	}
	format, err := exporter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	precisionName := opts.precision
	if precisionName == "" {
		precisionName = cfg.Export.Precision
	}
	precision, err := exporter.ParsePrecision(precisionName)
	if err != nil {
		return err
	}

	scenario, err := domain.ParseScenario(opts.scenario)
	if err != nil {
		return err
	}

	inputs, err := inputfile.Load(opts.inputs)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler premissas de %s", opts.inputs)
	}

	result, err := modeling.NewService().Run(ctx, inputs, scenario)
	if err != nil {
		return err
	}

	files, err := exporter.New(format, exporter.WithPrecision(precision)).WriteAll(opts.outPrefix, result)
	if err != nil {
		return err
	}

	if opts.sink == sinkPostgres {
		if err := saveToSink(ctx, cfg.Database, result); err != nil {
			return err
		}
	}

	if degenerate := result.Ratios.Degenerate(); len(degenerate) > 0 {
		log.L.WithFields(log.Fields{
			"run_id": result.RunID,
			"ratios": strings.Join(degenerate, ", "),
		}).Warn("Indicadores com divisão por zero")
	}

	_, err = fmt.Fprintf(stdout, "Saved: %s\n", strings.Join(files, ", "))
	return err
}

func saveToSink(ctx context.Context, cfg config.Database, result *domain.ModelResult) error {
	if !cfg.Enabled() {
		return errors.New("-sink postgres requer DATABASE_URL")
	}

	sink, closeConn, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	if err := sink.SaveResult(result); err != nil {
		return errors.Wrap(err, "erro ao gravar no PostgreSQL")
	}

	log.L.WithFields(log.Fields{
		"run_id":   result.RunID,
		"scenario": result.Scenario,
	}).Info("Tabelas gravadas no PostgreSQL")

	return nil
}
