package fitnesstest

import (
	"strings"

	"github.com/stretchr/testify/suite"
)

// BinarySuite runs the built ftracker and checks its report.
type BinarySuite struct {
	suite.Suite
}

func (suite *BinarySuite) TestExitCode() {
	e := New(suite.T())
	res := FtrackerRun(e)

	e.Equal(0, res.ExitCode, "Программа завершилась с ненулевым кодом, stderr:\n%s", res.Stderr)
}

func (suite *BinarySuite) TestReport() {
	e := New(suite.T())
	res := FtrackerRun(e)

	expected := []string{
		message("Swimming", 1,
			distance(720, swimmingLenStep),
			swimmingMeanSpeed(25, 40, 1),
			swimmingSpentCalories(25, 40, 1, 80)),
		message("Running", 1,
			distance(15000, lenStep),
			meanSpeed(15000, 1),
			runningSpentCalories(15000, 75, 1)),
		message("SportsWalking", 1,
			distance(9000, lenStep),
			meanSpeed(9000, 1),
			walkingSpentCalories(9000, 1, 75, 180)),
	}

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")
	suite.Require().Len(lines, len(expected), "Ожидается по строке на каждую тренировку, получено:\n%s", res.Stdout)
	for i := range expected {
		suite.Equal(expected[i], lines[i], "Строка %d отчета не совпадает с ожидаемой", i+1)
	}
}

func (suite *BinarySuite) TestNoErrorOutput() {
	e := New(suite.T())
	res := FtrackerRun(e)

	e.Empty(res.Stderr, "Не ожидается вывода в stderr при корректных данных")
}
