// Package config
package config

type validType int

const (
	PASS validType = iota
	FAIL
)

// ValidResult 設定値検証の結果。失敗時は利用者向けエラーと元エラーを保持する。
type ValidResult struct {
	validType validType
	err       error
	originErr error
}

// ValidPass 検証成功
func ValidPass() *ValidResult {
	return &ValidResult{validType: PASS, err: nil, originErr: nil}
}

// ValidFail 検証失敗
func ValidFail(err error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err}
}

// ValidFailWith 元エラー付きの検証失敗
func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err, originErr: originErr}
}

func (r *ValidResult) IsFail() bool {
	return r.validType == FAIL
}

func (r *ValidResult) Error() error {
	return r.err
}

func (r *ValidResult) OriginErr() error { return r.originErr }
