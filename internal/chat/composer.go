// Package chat edita a linha de chat digitada no cliente.
package chat

import (
	"strings"
	"unicode"
)

// Limite de runas por mensagem.
const maxRunes = 200

// Composer é o campo de texto do chat.
type Composer struct {
	buf []rune
}

// Insert acrescenta os caracteres digitados, ignorando os de controle.
func (c *Composer) Insert(rs []rune) {
	for _, r := range rs {
		if unicode.IsControl(r) || len(c.buf) >= maxRunes {
			continue
		}
		c.buf = append(c.buf, r)
	}
}

func (c *Composer) Backspace() {
	if len(c.buf) > 0 {
		c.buf = c.buf[:len(c.buf)-1]
	}
}

func (c *Composer) Text() string {
	return string(c.buf)
}

// Submit devolve o texto e limpa o campo. Linhas em branco não são enviadas.
func (c *Composer) Submit() (string, bool) {
	text := string(c.buf)
	c.buf = c.buf[:0]
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
