package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDACDBType      string = "DAC_DB_TYPE"
	EnvKeyDACDbPath      string = "DAC_DB_PATH"
	EnvKeyDACPostgresDSN string = "DAC_POSTGRES_DSN"

	EnvKeyDACHttpHostPort string = "DAC_HTTP_HOST_PORT"

	EnvKeyDACDefaultRate  string = "DAC_DEFAULT_RATE"
	EnvKeyDACDefaultBurst string = "DAC_DEFAULT_BURST"

	EnvKeyDACCorsOrigins string = "DAC_CORS_ORIGINS"

	LoggerNameDACCore       string = "dac_core"
	LoggerNameExecutor      string = "test_executor"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldDACCategory  string = "category"
	LoggerCategoryDACUnit   string = "unit"
	LoggerCategoryDACSensor string = "sensor"
	LoggerCategoryDACTest   string = "test"
	LoggerCategoryDACTx     string = "transaction"
)
