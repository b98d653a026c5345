// Package i18n загружает каталог переводов из YAML и ищет перевод
// по списку ключей в порядке приоритета.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog — плоский набор переводов "ключ: текст". Параметры подставляются вместо {name}.
type Catalog struct {
	messages map[string]string
}

// Load читает каталог из YAML-файла.
func Load(path string) (*Catalog, error) {
	const op = "i18n.Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Parse разбирает каталог из YAML.
func Parse(data []byte) (*Catalog, error) {
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return &Catalog{messages: messages}, nil
}

// New создаёт каталог из готового набора переводов.
func New(messages map[string]string) *Catalog {
	return &Catalog{messages: messages}
}

// First возвращает перевод первого найденного ключа. Если ни один ключ
// не найден, возвращается последний ключ списка.
func (c *Catalog) First(keys []string, params map[string]string) string {
	for _, key := range keys {
		if msg, ok := c.messages[key]; ok {
			return replace(msg, params)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return keys[len(keys)-1]
}

func replace(msg string, params map[string]string) string {
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
