package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/pkg/errors"
)

type EnvVars struct {
	Pagerank    pagerank.Config // Estimator defaults
	Seed        int64           // Random walk seed (0: time based)
	GrpcPort    int
	ApiPort     int
	RabbitHost  string
	RabbitUser  string
	RabbitPass  string
	WorkQueue   string
	ResultQueue string
	NodeLog     bool
	ServerLog   bool
}

// ReadEnvVars loads `.env` (if present) and reads the environment. Variables
// that are not set take their default; malformed values are an error.
func ReadEnvVars() (env EnvVars, err error) {
	// It will not override already existing env vars
	_ = godotenv.Load()

	env.Pagerank = pagerank.DefaultConfig()
	if env.Pagerank.Damping, err = readFloatEnvVarOr("DAMPING", env.Pagerank.Damping); err != nil {
		return
	}
	if env.Pagerank.Samples, err = readIntEnvVarOr("SAMPLES", env.Pagerank.Samples); err != nil {
		return
	}
	if env.Pagerank.Threshold, err = readFloatEnvVarOr("THRESHOLD", env.Pagerank.Threshold); err != nil {
		return
	}
	if env.Pagerank.MaxIterations, err = readIntEnvVarOr("MAX_ITERATIONS", env.Pagerank.MaxIterations); err != nil {
		return
	}
	var seed int
	if seed, err = readIntEnvVarOr("SEED", 0); err != nil {
		return
	}
	env.Seed = int64(seed)
	if env.GrpcPort, err = readIntEnvVarOr("GRPC_PORT", 50051); err != nil {
		return
	}
	if env.ApiPort, err = readIntEnvVarOr("API_PORT", 8080); err != nil {
		return
	}
	env.RabbitHost = readStringEnvVarOr("RABBIT_HOST", "localhost")
	env.RabbitUser = readStringEnvVarOr("RABBIT_USER", "guest")
	env.RabbitPass = readStringEnvVarOr("RABBIT_PASSWORD", "guest")
	env.WorkQueue = readStringEnvVarOr("WORK_QUEUE", "work")
	env.ResultQueue = readStringEnvVarOr("RESULT_QUEUE", "result")
	if env.NodeLog, err = readBoolEnvVarOr("NODE_LOG", false); err != nil {
		return
	}
	if env.ServerLog, err = readBoolEnvVarOr("SERVER_LOG", false); err != nil {
		return
	}
	return env, nil
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", errors.Errorf("%s not set", name)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readIntEnvVarOr(name string, or int) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, errors.Wrapf(err, "could not convert %s to a number", name)
	}
	return value, nil
}

func readFloatEnvVarOr(name string, or float64) (float64, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "could not convert %s to a number", name)
	}
	return value, nil
}

func readBoolEnvVarOr(name string, or bool) (bool, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, errors.Wrapf(err, "could not convert %s to a boolean", name)
	}
	return value, nil
}
