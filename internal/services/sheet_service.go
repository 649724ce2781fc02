package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"phka/internal/models/db_models"
	resp "phka/internal/models/response_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

var guestImportHeader = []string{"Name", "Phone", "Status", "Head Count", "Wishing"}

type SheetServiceInterface interface {
	ExportGuests(ctx context.Context, userID, eventID string) ([]byte, string, error)
	ExportGifts(ctx context.Context, userID, eventID string) ([]byte, string, error)
	// ImportGuests is best-effort: well-formed rows commit even when
	// others fail, duplicates are skipped, per-row errors accumulate.
	ImportGuests(ctx context.Context, userID, eventID string, file io.Reader) (*resp.ImportResult, error)
	ImportTemplate() ([]byte, string, error)
}

type SheetService struct {
	guestRepo repositories.GuestRepository
	giftRepo  repositories.GiftRepository
	eventRepo repositories.EventRepository
	planRepo  repositories.IPlanRepository
}

func NewSheetService(
	guestRepo repositories.GuestRepository,
	giftRepo repositories.GiftRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository) SheetServiceInterface {
	return &SheetService{
		guestRepo: guestRepo,
		giftRepo:  giftRepo,
		eventRepo: eventRepo,
		planRepo:  planRepo,
	}
}

func (s *SheetService) ownedEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return nil, utils.ErrRecordNotFound
	}
	return event, nil
}

// exportAllowance rejects when the plan allowance is spent. The
// returned assignment is charged via countExport only after the
// workbook is actually produced, so a failed export costs nothing.
func (s *SheetService) exportAllowance(ctx context.Context, userID string) (*db_models.UserPlan, error) {
	userPlan, err := s.planRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if userPlan == nil {
		return nil, nil
	}
	limit := userPlan.EffectiveExportLimit()
	if limit > 0 && userPlan.ExportsUsed >= limit {
		return nil, utils.ErrPlanLimitReached
	}
	return userPlan, nil
}

func (s *SheetService) countExport(ctx context.Context, userPlan *db_models.UserPlan) error {
	if userPlan == nil {
		return nil
	}
	if err := s.planRepo.IncrementExportsUsed(ctx, userPlan.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func exportFilename(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("2006-01-02"))
}

func writeSheet(header []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *SheetService) ExportGuests(ctx context.Context, userID, eventID string) ([]byte, string, error) {

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, "", err
	}
	userPlan, err := s.exportAllowance(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	rows := make([][]interface{}, 0, len(guests))
	for _, g := range guests {
		invited := ""
		if g.InvitedAt != nil {
			invited = g.InvitedAt.Format(time.RFC3339)
		}
		rows = append(rows, []interface{}{
			g.Name, g.Phone, string(g.Status), g.HeadCount, g.Wishing, invited,
		})
	}

	data, err := writeSheet(
		[]string{"Name", "Phone", "Status", "Head Count", "Wishing", "Invited At"},
		rows)
	if err != nil {
		return nil, "", err
	}

	if err := s.countExport(ctx, userPlan); err != nil {
		return nil, "", err
	}
	return data, exportFilename("guests"), nil
}

func (s *SheetService) ExportGifts(ctx context.Context, userID, eventID string) ([]byte, string, error) {

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, "", err
	}
	userPlan, err := s.exportAllowance(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	gifts, err := s.giftRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	rows := make([][]interface{}, 0, len(gifts))
	for _, g := range gifts {
		guestName := ""
		if g.Guest != nil {
			guestName = g.Guest.Name
		}
		rows = append(rows, []interface{}{
			guestName, string(g.Currency), string(g.Payment),
			g.AmountUSD, g.AmountKHR, g.Description,
		})
	}

	data, err := writeSheet(
		[]string{"Guest", "Currency", "Payment", "Amount USD", "Amount KHR", "Description"},
		rows)
	if err != nil {
		return nil, "", err
	}

	if err := s.countExport(ctx, userPlan); err != nil {
		return nil, "", err
	}
	return data, exportFilename("gifts"), nil
}

func (s *SheetService) ImportGuests(ctx context.Context, userID, eventID string, file io.Reader) (*resp.ImportResult, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if len(rows) <= 1 {
		return &resp.ImportResult{Errors: []resp.ImportRowError{}}, nil
	}

	// Effective plan limit bounds the whole batch up front; rows past
	// the limit are reported, not silently dropped.
	var remaining int64 = -1
	if userPlan, err := s.planRepo.FindActiveByUser(ctx, userID); err != nil {
		return nil, utils.ErrDatabaseError
	} else if userPlan != nil {
		if limit := userPlan.EffectiveGuestLimit(); limit > 0 {
			current, err := s.guestRepo.CountByUser(ctx, userID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			remaining = int64(limit) - current
			if remaining < 0 {
				remaining = 0
			}
		}
	}

	result := &resp.ImportResult{Errors: []resp.ImportRowError{}}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		name := cellAt(row, 0)
		phone := cellAt(row, 1)
		status := strings.ToLower(cellAt(row, 2))
		headCountRaw := cellAt(row, 3)
		wishing := cellAt(row, 4)

		if name == "" {
			result.Errors = append(result.Errors, resp.ImportRowError{Row: rowNum, Reason: "name is required"})
			continue
		}

		rsvp := db_models.RSVPPending
		if status != "" {
			switch db_models.RSVPStatus(status) {
			case db_models.RSVPConfirmed, db_models.RSVPPending, db_models.RSVPRejected:
				rsvp = db_models.RSVPStatus(status)
			default:
				result.Errors = append(result.Errors, resp.ImportRowError{Row: rowNum, Reason: "unknown status: " + status})
				continue
			}
		}

		headCount := 1
		if headCountRaw != "" {
			n, err := strconv.Atoi(headCountRaw)
			if err != nil || n < 1 {
				result.Errors = append(result.Errors, resp.ImportRowError{Row: rowNum, Reason: "invalid head count: " + headCountRaw})
				continue
			}
			headCount = n
		}

		dup, err := s.guestRepo.ExistsByPhoneOrName(ctx, eventID, phone, name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if dup {
			result.Skipped++
			continue
		}

		if remaining == 0 {
			result.Errors = append(result.Errors, resp.ImportRowError{Row: rowNum, Reason: "plan guest limit reached"})
			continue
		}

		guest := &db_models.Guest{
			EventID:   event.ID,
			Name:      name,
			Phone:     phone,
			Status:    rsvp,
			HeadCount: headCount,
			Wishing:   wishing,
		}
		if err := s.guestRepo.Insert(ctx, guest); err != nil {
			result.Errors = append(result.Errors, resp.ImportRowError{Row: rowNum, Reason: "could not save row"})
			continue
		}

		result.Imported++
		if remaining > 0 {
			remaining--
		}
	}

	return result, nil
}

func (s *SheetService) ImportTemplate() ([]byte, string, error) {
	data, err := writeSheet(guestImportHeader, nil)
	if err != nil {
		return nil, "", err
	}
	return data, "guest-import-template.xlsx", nil
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
