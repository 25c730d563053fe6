package inputfile

import (
	stderrors "errors"
	"os"
	"math"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/hjson/hjson-go/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnsupportedFormat = stderrors.New("formato de arquivo de premissas não suportado")
	ErrUnknownField      = stderrors.New("campo desconhecido no arquivo de premissas")
	ErrMissingField      = stderrors.New("campo obrigatório ausente no arquivo de premissas")
	ErrInvalidField      = stderrors.New("campo com valor não inteiro no arquivo de premissas")
)

type decodeFunc func(data []byte, out *map[string]interface{}) error

var decoders = map[string]decodeFunc{
	".json": func(data []byte, out *map[string]interface{}) error {
		return json.Unmarshal(data, out)
	},
	".yaml": func(data []byte, out *map[string]interface{}) error {
		return yaml.Unmarshal(data, out)
	},
	".yml": func(data []byte, out *map[string]interface{}) error {
		return yaml.Unmarshal(data, out)
	},
	".hjson": func(data []byte, out *map[string]interface{}) error {
		return hjson.Unmarshal(data, out)
	},
	".toml": func(data []byte, out *map[string]interface{}) error {
		return toml.Unmarshal(data, out)
	},
}

// Extensions retorna as extensões aceitas, em ordem alfabética
func Extensions() []string {
	extensions := make([]string, 0, len(decoders))
	for ext := range decoders {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

// Load lê um registro de premissas do arquivo, escolhendo o decodificador pela extensão
func Load(path string) (domain.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Inputs{}, errors.Wrapf(err, "erro ao ler arquivo de premissas %s", path)
	}

	inputs, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return domain.Inputs{}, errors.Wrapf(err, "arquivo %s", path)
	}

	return inputs, nil
}

// Parse decodifica um registro plano de premissas. Todas as chaves são obrigatórias
// e chaves desconhecidas são recusadas.
func Parse(data []byte, ext string) (domain.Inputs, error) {
	decode, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return domain.Inputs{}, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	raw := make(map[string]interface{})
	if err := decode(data, &raw); err != nil {
		return domain.Inputs{}, errors.Wrap(err, "erro ao decodificar premissas")
	}

	if fractional := fractionalIntegerFields(raw); len(fractional) > 0 {
		return domain.Inputs{}, errors.Wrap(ErrInvalidField, strings.Join(fractional, ", "))
	}

	var inputs domain.Inputs
	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &metadata,
		Result:   &inputs,
		TagName:  "mapstructure",
	})
	if err != nil {
		return domain.Inputs{}, errors.Wrap(err, "erro ao criar decodificador")
	}

	if err := decoder.Decode(raw); err != nil {
		return domain.Inputs{}, errors.Wrap(err, "erro ao converter premissas")
	}

	if len(metadata.Unused) > 0 {
		sort.Strings(metadata.Unused)
		return domain.Inputs{}, errors.Wrap(ErrUnknownField, strings.Join(metadata.Unused, ", "))
	}

	if len(metadata.Unset) > 0 {
		sort.Strings(metadata.Unset)
		return domain.Inputs{}, errors.Wrap(ErrMissingField, strings.Join(metadata.Unset, ", "))
	}

	return inputs, nil
}

// integerFields são as chaves de Inputs com tipo inteiro
var integerFields = func() []string {
	fields := make([]string, 0)
	inputsType := reflect.TypeOf(domain.Inputs{})
	for i := 0; i < inputsType.NumField(); i++ {
		field := inputsType.Field(i)
		if field.Type.Kind() == reflect.Int {
			fields = append(fields, field.Tag.Get("mapstructure"))
		}
	}
	sort.Strings(fields)
	return fields
}()

// fractionalIntegerFields lista os campos inteiros que chegaram com parte fracionária;
// sem essa verificação o mapstructure truncaria o valor
func fractionalIntegerFields(raw map[string]interface{}) []string {
	fractional := make([]string, 0)
	for _, key := range integerFields {
		var value float64
		switch v := raw[key].(type) {
		case float64:
			value = v
		case float32:
			value = float64(v)
		default:
			continue
		}
		if value != math.Trunc(value) {
			fractional = append(fractional, key)
		}
	}
	return fractional
}
