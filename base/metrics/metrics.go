/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Hits and misses of a lookup: *.hit / *.miss
- Error: *.err
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/x-xyz/bnsapi/base/env"
	"github.com/x-xyz/bnsapi/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// using host removes all tags associated with host
				// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
				"host:",
				"pod:" + env.PodName(),
				"env:" + envName(),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

func envName() string {
	if name := viper.GetString("env_name"); name != "" {
		return name
	}
	return env.EnvName()
}

// Metrics prefixes every key with the package name and never lets a bump panic
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) recoverBump(fn, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"func": fn,
			"key":  mt.pkgName + "." + key + "#" + strings.Join(tags, "#"),
		}).Error("bump panic")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpSum", key, tags)
	mt.datadog.BumpSum(mt.pkgName+"."+key, val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpHistogram", key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+"."+key, val, 1, tags...)
}

// BumpTime starts a timer which is reported on End:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	defer func() {
		if err := recover(); err != nil {
			log.Log().WithFields(log.Fields{"err": err, "func": "BumpTime", "key": key}).Error("bump panic")
			e = fakeEnd{}
		}
	}()
	return mt.datadog.BumpTime(mt.pkgName+"."+key, 1, tags...)
}

type fakeEnd struct{}

func (fakeEnd) End() {}
