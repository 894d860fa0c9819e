package middlewares

import (
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithError(
					err,
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					constvars.ErrDevRecoveredPanic,
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
