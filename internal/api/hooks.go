package api

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/quocvuong92/learn-cli/internal/logging"
)

// attachHTTPLogging records every exchange made through rc at debug level.
func attachHTTPLogging(rc *resty.Client, hl *logging.HTTPLogger) {
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		if raw := req.RawRequest; raw != nil {
			body, _ := json.Marshal(req.Body)
			hl.LogRequest(raw.Method, raw.URL.String(), raw.Header, body)
		}
		hl.LogResponse(resp.StatusCode(), resp.Header(), resp.Body(), resp.Time())
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		hl.LogError(err, req.Method, req.URL)
	})
}

// restyLogger routes resty's own warnings into the diagnostic log instead
// of stderr, which would garble the REPL.
type restyLogger struct {
	l *logging.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Sprintf(format, v...), nil)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn(fmt.Sprintf(format, v...))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...))
}
