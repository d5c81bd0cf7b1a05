// Package service
package service

import "testing"

func TestSignAndVerifySessionCookie(t *testing.T) {
	tests := []struct {
		secret string
		token  string
	}{
		{"secret", "abcdef0123456789"},
		{"another-secret", "a"},
		{"секрет", "日本語でもトークンは署名できる"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		cookieValue := SignSessionToken(test.secret, test.token)
		token, ok := VerifySessionCookie(test.secret, cookieValue)
		if !ok || token != test.token {
			fail++
			t.Errorf("VerifySessionCookie(%q, SignSessionToken(...)) = (%q, %v); expected (%q, true)", test.secret, token, ok, test.token)
			continue
		}
		pass++
	}
	t.Logf("TestSignAndVerifySessionCookie: %d pass, %d fail", pass, fail)
}

func TestVerifySessionCookieRejectsInvalid(t *testing.T) {
	valid := SignSessionToken("secret", "abcdef0123456789")
	tamperedSignature := valid[:len(valid)-1] + "0"
	if valid[len(valid)-1] == '0' {
		tamperedSignature = valid[:len(valid)-1] + "1"
	}
	tests := []struct {
		name        string
		secret      string
		cookieValue string
	}{
		{"wrong secret", "other-secret", valid},
		{"tampered token", "secret", "x" + valid},
		{"tampered signature", "secret", tamperedSignature},
		{"no separator", "secret", "abcdef0123456789"},
		{"empty token", "secret", ".deadbeef"},
		{"empty signature", "secret", "abcdef0123456789."},
		{"signature not hex", "secret", "abcdef0123456789.zzzz"},
		{"empty value", "secret", ""},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		if token, ok := VerifySessionCookie(test.secret, test.cookieValue); ok {
			fail++
			t.Errorf("VerifySessionCookie(%s) = (%q, true); expected rejection", test.name, token)
			continue
		}
		pass++
	}
	t.Logf("TestVerifySessionCookieRejectsInvalid: %d pass, %d fail", pass, fail)
}
