package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Cache     CacheConfig     `yaml:"cache"`
	Session   SessionConfig   `yaml:"session"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Share     ShareConfig     `yaml:"share"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Admin     AdminConfig     `yaml:"admin"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// LLMConfig 는 생성형 텍스트 API 호출 설정이다.
// API 키는 설정 파일이 아니라 GEMINI_API_KEY 환경변수로만 받는다.
type LLMConfig struct {
	Provider  string      `yaml:"provider"`
	ModelName string      `yaml:"model_name"`
	Quota     QuotaConfig `yaml:"quota"`
}

// QuotaConfig 는 LLM 호출에 대한 속도/일일 한도를 정의한다.
type QuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type WikipediaConfig struct {
	BaseURL       string        `yaml:"base_url"`
	ThumbnailSize int           `yaml:"thumbnail_size"`
	Timeout       time.Duration `yaml:"timeout"`
}

// CacheConfig 는 날짜별 조회 결과 캐시 설정이다. backend 는 memory, redis, none 중 하나.
type CacheConfig struct {
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type RendererConfig struct {
	ChromePath string        `yaml:"chrome_path"`
	Timeout    time.Duration `yaml:"timeout"`
}

type ShareConfig struct {
	PageURL string `yaml:"page_url"`
}

type AvatarConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AdminConfig 는 운영용 엔드포인트 설정이다. 토큰이 비어 있으면 해당 라우트를 등록하지 않는다.
type AdminConfig struct {
	Token string `yaml:"token"`
}

const ADMIN_TOKEN_ENV = "ADMIN_TOKEN"

// AdminToken 은 환경변수를 설정 파일 값보다 우선한다.
func (c AppConfig) AdminToken() string {
	if v := os.Getenv(ADMIN_TOKEN_ENV); v != "" {
		return v
	}
	return c.Admin.Token
}

var config *AppConfig

// Default 는 설정 파일이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		LLM: LLMConfig{
			Provider:  "google",
			ModelName: "gemini-2.5-flash",
		},
		Wikipedia: WikipediaConfig{
			BaseURL:       "https://en.wikipedia.org/w/api.php",
			ThumbnailSize: 200,
			Timeout:       10 * time.Second,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     6 * time.Hour,
		},
		Session: SessionConfig{TTL: 30 * time.Minute},
		Renderer: RendererConfig{
			Timeout: 30 * time.Second,
		},
		Avatar: AvatarConfig{BaseURL: "https://ui-avatars.com/api/"},
	}
}

func InitApp() {
	basePath := GetBasePath()

	// load environment variables
	godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := Default()

	// load configuration file
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	}
	config = &c
}

// Set 은 테스트나 CLI 에서 설정을 직접 주입할 때 사용한다.
func Set(c AppConfig) {
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
