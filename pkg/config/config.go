package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Sheets    SheetsConfig
	Relatorio RelatorioConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // vazio deixa o logger escolher pelo ambiente
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig configuração do Google Sheets usado como banco de dados.
// SpreadsheetID e CredentialsFile são obrigatórios; sem eles a aplicação não sobe.
type SheetsConfig struct {
	SpreadsheetID    string // ID da planilha (da URL do Google Sheets)
	CredentialsFile  string // caminho do JSON da service account
	AbaEquipamentos  string
	AbaMovimentacoes string
	AbaSetores       string
	AbaConfig        string
}

// Validate confere os campos obrigatórios da conexão com a planilha.
func (c SheetsConfig) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("SHEETS_SPREADSHEET_ID é obrigatório")
	}
	if strings.TrimSpace(c.CredentialsFile) == "" {
		return fmt.Errorf("SHEETS_CREDENTIALS_FILE é obrigatório")
	}
	return nil
}

// RelatorioConfig caminhos dos templates HTML e diretório de saída dos relatórios.
// Templates ausentes não são fatais: o gerador de estoque tem layout embutido.
type RelatorioConfig struct {
	TemplateEstoque string
	TemplateSetores string
	Dir             string
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, SHEETS_SPREADSHEET_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Também tenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "hexa-stock"),
			LogLevel: getString(v, "LOG_LEVEL", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:    getString(v, "SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile:  getString(v, "SHEETS_CREDENTIALS_FILE", "credentials.json"),
			AbaEquipamentos:  getString(v, "SHEETS_ABA_EQUIPAMENTOS", "equipamentos"),
			AbaMovimentacoes: getString(v, "SHEETS_ABA_MOVIMENTACOES", "movimentacoes"),
			AbaSetores:       getString(v, "SHEETS_ABA_SETORES", "movimentacoes_setores"),
			AbaConfig:        getString(v, "SHEETS_ABA_CONFIG", "config"),
		},
		Relatorio: RelatorioConfig{
			TemplateEstoque: getString(v, "RELATORIO_TEMPLATE_ESTOQUE", "relatorio_template.html"),
			TemplateSetores: getString(v, "RELATORIO_TEMPLATE_SETORES", "relatorio_setores_template.html"),
			Dir:             getString(v, "RELATORIO_DIR", "relatorios"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
