package xviper

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joshyorko/sbomlic/common"
	"github.com/spf13/viper"
)

var (
	pipeline chan command
)

type command func(*config)

type config struct {
	Focus    *viper.Viper
	Filename string
}

func (it *config) reload() {
	if len(it.Filename) == 0 {
		return
	}
	it.Focus = viper.New()
	it.Focus.SetConfigFile(it.Filename)
	err := it.Focus.ReadInConfig()
	if err != nil {
		common.Trace("Could not read settings from %v, reason: %v", it.Filename, err)
	}
}

func (it *config) save() {
	if len(it.Filename) == 0 {
		return
	}
	err := os.MkdirAll(filepath.Dir(it.Filename), 0o750)
	if err != nil {
		common.Error("xviper.save", err)
		return
	}
	err = it.Focus.WriteConfigAs(it.Filename)
	if err != nil {
		common.Error("xviper.save", err)
	}
}

func runner(todo chan command) {
	settings := &config{
		Focus: viper.New(),
	}
	for task := range todo {
		task(settings)
	}
}

func init() {
	pipeline = make(chan command)
	go runner(pipeline)
	SetConfigFile(filepath.Join(common.ProductHome(), "settings.yaml"))
}

// SetConfigFile points the persisted settings to given file and loads
// whatever is already there. Settings live under product home by
// default, this is for tests and overrides.
func SetConfigFile(filename string) {
	flow := sync.WaitGroup{}
	flow.Add(1)
	pipeline <- func(core *config) {
		defer flow.Done()
		core.Filename = filename
		core.reload()
	}
	flow.Wait()
}

func ConfigFileUsed() string {
	result := make(chan string)
	pipeline <- func(core *config) {
		result <- core.Filename
	}
	return <-result
}

func Set(key string, value interface{}) {
	flow := sync.WaitGroup{}
	flow.Add(1)
	pipeline <- func(core *config) {
		defer flow.Done()
		core.Focus.Set(key, value)
		core.save()
	}
	flow.Wait()
}

func Get(key string) interface{} {
	result := make(chan interface{})
	pipeline <- func(core *config) {
		result <- core.Focus.Get(key)
	}
	return <-result
}

func GetString(key string) string {
	result := make(chan string)
	pipeline <- func(core *config) {
		result <- core.Focus.GetString(key)
	}
	return <-result
}

func GetBool(key string) bool {
	result := make(chan bool)
	pipeline <- func(core *config) {
		result <- core.Focus.GetBool(key)
	}
	return <-result
}
