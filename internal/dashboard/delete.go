package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/jala-youth/jala-web/internal/model"
)

func (d *Dashboard) requestDelete(kind model.RecordKind, id int) error {
	if _, err := model.ParseRecordKind(string(kind)); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("invalid %s id %d", kind.Singular(), id)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.Auth != Authenticated {
		return ErrNotAuthenticated
	}
	d.state.Alert = ""
	d.state.Pending = &PendingDelete{Kind: kind, ID: id, Prompt: ConfirmPrompt(kind)}
	return nil
}

// confirmDelete issues the DELETE for the pending request. A success
// refetches the stats and the affected collection once each.
func (d *Dashboard) confirmDelete(ctx context.Context, kind model.RecordKind, id int) error {
	d.mu.Lock()
	p := d.state.Pending
	if p == nil || (kind != "" && kind != p.Kind) || (id != 0 && id != p.ID) {
		d.mu.Unlock()
		return ErrNoPendingDelete
	}
	if d.deleting {
		d.mu.Unlock()
		return ErrBusy
	}
	target := *p
	d.deleting = true
	gen := d.gen
	d.mu.Unlock()

	res := d.session.DeleteRecord(ctx, target.Kind, target.ID)

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		if !res.OK {
			return res.Err
		}
		return nil
	}
	d.deleting = false
	d.state.Pending = nil
	if !res.OK {
		d.state.Alert = DeleteFailedAlert(target.Kind)
		d.mu.Unlock()
		d.log.Warn().Str("kind", string(target.Kind)).Int("id", target.ID).Msg(res.Err.Error())
		return res.Err
	}
	d.mu.Unlock()

	d.log.Info().Str("kind", string(target.Kind)).Int("id", target.ID).Msg("Record deleted")
	return errors.Join(
		d.load(ctx, TabOverview, true),
		d.load(ctx, tabFor(target.Kind), true),
	)
}
