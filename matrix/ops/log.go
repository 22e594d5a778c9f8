// SPDX-License-Identifier: MIT

package ops

import "github.com/op/go-logging"

const logModule = "linalg"

var log = logging.MustGetLogger(logModule)

func init() {
	logging.SetLevel(logging.WARNING, logModule)
}
