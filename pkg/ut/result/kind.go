package result

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Kind classifies the outcome a Result records.
type Kind int

const (
	// KindSuccess means the test case body returned without any failure.
	KindSuccess Kind = iota
	// KindFail means an assertion evaluated false.
	KindFail
	// KindError means an internal-invariant violation aborted the run.
	KindError
	// KindException means an unexpected failure escaped a test case or a
	// suite run.
	KindException
	// KindWarning is reserved for advisory results. Nothing emits it yet.
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "SUCCESS"
	case KindFail:
		return "FAIL"
	case KindError:
		return "ERROR"
	case KindException:
		return "EXCEPTION"
	case KindWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) LogLevel() logrus.Level {
	switch k {
	case KindSuccess:
		return logrus.InfoLevel
	case KindFail:
		return logrus.ErrorLevel
	case KindError:
		return logrus.ErrorLevel
	case KindException:
		return logrus.ErrorLevel
	case KindWarning:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// IsBad returns true if the kind reports any flavor of failure.
func (k Kind) IsBad() bool {
	return k == KindFail || k == KindError || k == KindException
}

// KindFromString maps a rendered kind token back to its Kind.
func KindFromString(s string) (Kind, error) {
	for _, k := range []Kind{KindSuccess, KindFail, KindError, KindException, KindWarning} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown result kind '%s'", s)
}
