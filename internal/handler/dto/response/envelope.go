package response

import "delacream-park/internal/usecase"

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Msg(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// ListEnvelope is the paginated variant used by admin list endpoints.
type ListEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	Data    any  `json:"data"`
}

func Paged(data any, p usecase.PageInfo) ListEnvelope {
	return ListEnvelope{
		Success: true,
		Count:   p.Count,
		Total:   p.Total,
		Page:    p.Page,
		Pages:   p.Pages,
		Data:    data,
	}
}

// CountEnvelope is the unpaginated list variant for public endpoints.
type CountEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func Counted(data any, count int) CountEnvelope {
	return CountEnvelope{Success: true, Count: count, Data: data}
}
