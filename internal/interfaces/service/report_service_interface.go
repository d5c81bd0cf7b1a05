// Package service
package service

type ReportServiceInterface interface {
	GenerateFlightLogReport(req *RequestFlightLogReport) *ApiResponse[ResponseFlightLogReport]
}

type RequestFlightLogReport struct {
	Identity *Identity
	Start    string `query:"start"`
	End      string `query:"end"`
}

// ResponseFlightLogReport PDFのバイト列とダウンロード名。JSONにはならない。
type ResponseFlightLogReport struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"-"`
}
