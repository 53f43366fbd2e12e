package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	// Senha compartilhada do operador; prefira PasswordHash (bcrypt) em produção
	Password        string        `mapstructure:"auth_password"`
	PasswordHash    string        `mapstructure:"auth_password_hash"`
	SessionTTL      time.Duration `mapstructure:"auth_session_ttl"`
	CookieName      string        `mapstructure:"auth_cookie_name"`
	CookieSecure    bool          `mapstructure:"auth_cookie_secure"`
	LoginPath       string        `mapstructure:"auth_login_path"`
	ProtectedPrefix string        `mapstructure:"auth_protected_prefix"`
}

type Analytics struct {
	BaseURL        string `mapstructure:"ga_base_url"`
	PropertyID     string `mapstructure:"ga_property_id"`
	AccessToken    string `mapstructure:"ga_access_token"`
	BlogPathPrefix string `mapstructure:"ga_blog_path_prefix"`
	ClickEventName string `mapstructure:"ga_click_event_name"`
	RowLimit       int    `mapstructure:"ga_row_limit"`
}

// Configured indica se as duas credenciais obrigatórias do provedor estão presentes
func (a Analytics) Configured() bool {
	return a.PropertyID != "" && a.AccessToken != ""
}

// CredentialFlags expõe a presença de cada credencial para diagnóstico do
// operador (payload de debug do 503); nunca expõe os valores em si
func (a Analytics) CredentialFlags() map[string]bool {
	return map[string]bool{
		"has_property_id":  a.PropertyID != "",
		"has_access_token": a.AccessToken != "",
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_PASSWORD", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_SESSION_TTL", "24h") // Expiração fixa, não renovada por atividade
	viper.SetDefault("AUTH_COOKIE_NAME", "dashboard_session")
	viper.SetDefault("AUTH_COOKIE_SECURE", true)
	viper.SetDefault("AUTH_LOGIN_PATH", "/login")
	viper.SetDefault("AUTH_PROTECTED_PREFIX", "/analytics")

	viper.SetDefault("GA_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA_PROPERTY_ID", "")
	viper.SetDefault("GA_ACCESS_TOKEN", "")
	viper.SetDefault("GA_BLOG_PATH_PREFIX", "/blog")
	viper.SetDefault("GA_CLICK_EVENT_NAME", "click")
	viper.SetDefault("GA_ROW_LIMIT", 10)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.Password == "" && config.Auth.PasswordHash == "" {
		return nil, fmt.Errorf("nenhuma senha de operador configurada (AUTH_PASSWORD ou AUTH_PASSWORD_HASH)")
	}

	if config.Auth.SessionTTL <= 0 {
		config.Auth.SessionTTL = 24 * time.Hour
	}

	// Credenciais do provedor ausentes não impedem o boot: o endpoint de
	// relatório responde 503 com flags de presença para diagnóstico
	if !config.Analytics.Configured() {
		logrus.WithFields(logrus.Fields{
			"has_property_id":  config.Analytics.PropertyID != "",
			"has_access_token": config.Analytics.AccessToken != "",
		}).Warn("Credenciais do Google Analytics incompletas; relatórios ficarão indisponíveis")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
