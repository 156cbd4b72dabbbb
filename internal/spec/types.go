package spec

// Config is the .coach/config.yml schema.
type Config struct {
	Version   int             `yaml:"version"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	UI        UIConfig        `yaml:"ui"`
	Evaluator EvaluatorConfig `yaml:"evaluator"`
	Log       LogConfig       `yaml:"log"`
}

type CatalogConfig struct {
	File            string `yaml:"file"`
	MinAnswerLength int    `yaml:"min_answer_length"`
}

type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

type EvaluatorConfig struct {
	Model string `yaml:"model"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}
