package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	CreateMember(req *CreateMemberRequest) (*MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*MemberResponse, error)
	ListMembers() ([]MemberResponse, error)
	UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	DeleteMember(id uuid.UUID) error
}

// BookServiceInterface defines the interface for book service
type BookServiceInterface interface {
	CreateBook(req *CreateBookRequest) (*BookResponse, error)
	GetBookByID(id uuid.UUID) (*BookResponse, error)
	ListBooks() ([]BookResponse, error)
	UpdateBook(id uuid.UUID, req *UpdateBookRequest) (*BookResponse, error)
	DeleteBook(id uuid.UUID) error
}

// MeetingServiceInterface defines the interface for meeting service
type MeetingServiceInterface interface {
	CreateMeeting(req *CreateMeetingRequest) (*MeetingResponse, error)
	GetMeetingByID(id uuid.UUID) (*MeetingResponse, error)
	ListMeetings() ([]MeetingResponse, error)
	UpdateMeeting(id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error)
	DeleteMeeting(id uuid.UUID) error
}
