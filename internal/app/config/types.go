package config

type (
	InternalConfig struct {
		App       App
		Dentalink Dentalink
		Logger    Logger
	}

	App struct {
		Env string
	}

	Dentalink struct {
		BaseUrl string
		Token   string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
