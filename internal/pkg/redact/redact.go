// redact — маскирование чувствительных значений в логах.
// Секреты никогда не пишутся в лог целиком.
package redact

import "strings"

// Email маскирует локальную часть адреса, сохраняя домен.
// Срез по рунам, чтобы не резать многобайтовые символы.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := []rune(parts[0]), parts[1]
	masked := "***"
	if len(local) > 2 {
		masked = string(local[:2]) + "***"
	}

	return masked + "@" + domain
}

// Username маскирует имя пользователя по тем же правилам, что и локальную
// часть e-mail.
func Username(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
