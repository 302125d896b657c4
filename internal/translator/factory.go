package translator

import (
	"fmt"
	"sort"
)

var constructors = map[string]func(ServiceConfig) Translator{
	"baidu":    func(cfg ServiceConfig) Translator { return NewBaiduService(cfg) },
	"google":   func(cfg ServiceConfig) Translator { return NewGoogleService(cfg) },
	"youdao":   func(cfg ServiceConfig) Translator { return NewYoudaoService(cfg) },
	"mymemory": func(cfg ServiceConfig) Translator { return NewMyMemoryService(cfg) },
	"ollama":   func(cfg ServiceConfig) Translator { return NewOllamaService(cfg) },
}

// New returns the backend registered under name.
func New(name string, cfg ServiceConfig) (Translator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown translation backend: %s", name)
	}
	return ctor(cfg), nil
}

// Names lists the registered backends in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
