package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config/local.yaml"

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"prod"`
	OutputDir      string `yaml:"output_dir" env:"OUTPUT_DIR" env-default:"./folhatarefa"`
	FolderPrefix   string `yaml:"folder_prefix" env:"FOLDER_PREFIX" env-default:"Folhas-Tarefa"`
	ArtifactPrefix string `yaml:"artifact_prefix" env:"ARTIFACT_PREFIX" env-default:"Folha_Tarefa"`
	ImagesDir      string `yaml:"images_dir" env:"IMAGES_DIR" env-default:"./imagens"`
	RosterPath     string `yaml:"roster_path" env:"ROSTER_PATH"`
	NormalizedPath string `yaml:"normalized_path" env:"NORMALIZED_PATH" env-default:"saida_tratada.xlsx"`
	Workers        int    `yaml:"workers" env:"WORKERS" env-default:"1"`
	SkipOptimize   bool   `yaml:"skip_optimize" env:"SKIP_OPTIMIZE" env-default:"false"`
	SkipSummary    bool   `yaml:"skip_summary" env:"SKIP_SUMMARY" env-default:"false"`

	Header `yaml:"header"`
}

// Header holds the fixed values printed on every cover page.
type Header struct {
	Contract string `yaml:"contract" env:"CONTRACT" env-default:"5900.0126135.23.3"`
	Venture  string `yaml:"venture" env:"VENTURE" env-default:"REVAMP DA U-272D"`
}

// Load reads the YAML file at path when it exists and applies env overrides.
// An empty path falls back to CONFIG_PATH and then to ./config/local.yaml.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultPath
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &cfg, nil
}

func MustConfig(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
