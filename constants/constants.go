package constants

import "os"

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

// GetLanguage is the default label language, overridden per call by
// --lang or Accept-Language.
func GetLanguage() string {
	return getEnv("TERTIAN_LANG", "en")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

func GetMediaDir() string {
	return getEnv("MEDIA_PATH", ".")
}

// GetDynamoEndpoint is empty unless a local DynamoDB is used.
func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "")
}

func GetAWSRegion() string {
	return getEnv("AWS_REGION", "us-east-1")
}

func GetTableName() string {
	return getEnv("TERTIAN_TABLE", "tertian-analyses")
}

// length of one rendered chord, a half note at 480 ticks per quarter
const TicksPerChord = 960

// DynamoDB caps BatchGetItem at 100 keys
const MaxBatchGet = 100
