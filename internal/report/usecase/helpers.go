package usecase

import (
	"fmt"
	"time"

	"market-intel-srv/pkg/util"
)

const (
	execPrefixRecurring = "exec"
	execPrefixOnDemand  = "ondemand"

	execSuffixLen = 9
)

// newExecutionID builds a unique execution id: prefix, submission
// timestamp in unix millis, random suffix. The prefix distinguishes the
// two persistence paths at a glance.
func newExecutionID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), util.RandomString(execSuffixLen))
}
