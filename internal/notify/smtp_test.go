package notify

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/internal/entity"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newRecordingNotifier(sent *[]sentMail) *smtpNotifier {
	n := NewSMTP(SMTPConfig{Host: "mail.example.edu", Port: 25, From: "clearance@example.edu"},
		slog.New(slog.NewTextHandler(io.Discard, nil))).(*smtpNotifier)
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return n
}

func TestNotifyMissing(t *testing.T) {
	var sent []sentMail
	n := newRecordingNotifier(&sent)

	fac := &entity.Faculty{Name: "R. Tanga", Email: "rtanga@example.edu"}
	set := &entity.ClearanceSet{Name: "Year-end clearance", AcademicYear: "2025-2026"}
	missing := []constants.ClearanceType{constants.Library, constants.Equipment}

	if err := n.NotifyMissing(context.Background(), fac, set, missing); err != nil {
		t.Fatalf("NotifyMissing: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(sent))
	}
	m := sent[0]
	if m.addr != "mail.example.edu:25" || len(m.to) != 1 || m.to[0] != "rtanga@example.edu" {
		t.Errorf("unexpected envelope: %+v", m)
	}
	for _, want := range []string{"Year-end clearance", "2025-2026", "LIBRARY", "EQUIPMENT", "R. Tanga"} {
		if !strings.Contains(m.msg, want) {
			t.Errorf("digest missing %q:\n%s", want, m.msg)
		}
	}
}

func TestNotifyMissingEmptyListSendsNothing(t *testing.T) {
	var sent []sentMail
	n := newRecordingNotifier(&sent)

	err := n.NotifyMissing(context.Background(), &entity.Faculty{Email: "x@example.edu"}, &entity.ClearanceSet{}, nil)
	if err != nil {
		t.Fatalf("NotifyMissing: %v", err)
	}
	if len(sent) != 0 {
		t.Errorf("sent %d mails for an empty missing list", len(sent))
	}
}

func TestNotifyStatusChange(t *testing.T) {
	var sent []sentMail
	n := newRecordingNotifier(&sent)

	fac := &entity.Faculty{Name: "R. Tanga", Email: "rtanga@example.edu"}
	doc := &entity.Document{ClearanceType: "LIBRARY", FileName: "library-cert.pdf"}

	if err := n.NotifyStatusChange(context.Background(), fac, doc, constants.StatusApproved); err != nil {
		t.Fatalf("NotifyStatusChange: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(sent))
	}
	for _, want := range []string{"library-cert.pdf", "APPROVED", "LIBRARY"} {
		if !strings.Contains(sent[0].msg, want) {
			t.Errorf("notice missing %q:\n%s", want, sent[0].msg)
		}
	}
}

func TestNotifyCancelledContext(t *testing.T) {
	var sent []sentMail
	n := newRecordingNotifier(&sent)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := n.NotifyStatusChange(ctx, &entity.Faculty{Email: "x@example.edu"}, &entity.Document{}, constants.StatusApproved)
	if err == nil {
		t.Error("cancelled context should fail delivery")
	}
	if len(sent) != 0 {
		t.Errorf("sent %d mails on cancelled context", len(sent))
	}
}
