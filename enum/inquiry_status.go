package enum

type InquiryStatus string

const (
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusApproved InquiryStatus = "approved"
	InquiryStatusDeclined InquiryStatus = "declined"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusDeclined:
		return true
	}
	return false
}
