package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// MetricsCollector интерфейс коллектора HTTP метрик
type MetricsCollector interface {
	ObserveHTTPRequest(method, path, status string, duration time.Duration)
}

// statusRecorder перехватывает статус-код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает prometheus метрики по каждому HTTP запросу
// В качестве path использует шаблон маршрута gorilla/mux,
// чтобы не плодить кардинальность по конкретным ID
func Metrics(collector MetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			collector.ObserveHTTPRequest(r.Method, path, strconv.Itoa(recorder.status), time.Since(start))
		})
	}
}
