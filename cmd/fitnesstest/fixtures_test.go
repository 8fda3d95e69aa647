package fitnesstest

import (
	"os"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

const runProcessTimeout = 10 * time.Second

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func BinaryPath(e *Env) string {
	return ExistPath(e, flagBinaryPath)
}

// FinishedProcess is a process that has already exited.
type FinishedProcess struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func RunProcess(e *Env, command string, args ...string) FinishedProcess {
	cacheKey := append([]string{command}, args...)
	return fixenv.Cache(e, cacheKey, nil, func() (FinishedProcess, error) {
		ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
		defer cancel()

		p := fork.NewProcess(ctx, command, fork.WithArgs(args...))
		e.Logf("Запускаю %q", p)
		exitCode, err := p.Run(ctx)
		if err != nil {
			return FinishedProcess{}, err
		}
		return FinishedProcess{
			ExitCode: exitCode,
			Stdout:   string(p.Stdout()),
			Stderr:   string(p.Stderr()),
		}, nil
	})
}

func FtrackerRun(e *Env) FinishedProcess {
	return RunProcess(e, BinaryPath(e))
}
