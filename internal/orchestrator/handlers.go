package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/service"
	"github.com/MKhiriev/dravis-client/models"
)

func (o *Orchestrator) newConversation(context.Context, any) (Result, error) {
	o.conversation.Reset()
	return Result{}, nil
}

func (o *Orchestrator) sendMessage(ctx context.Context, payload any) (Result, error) {
	text, err := payloadAs[string](payload)
	if err != nil {
		return Result{}, err
	}

	reply, err := o.conversation.Send(ctx, text)
	switch {
	case err == nil:
		return Result{Reply: reply}, nil
	case errors.Is(err, service.ErrEmptyMessage), errors.Is(err, service.ErrSessionSuperseded):
		return Result{}, nil
	case errors.Is(err, service.ErrSessionBusy):
		return info(app.MsgSessionBusy), err
	default:
		// the failure is already in the transcript as an assistant message
		return Result{}, err
	}
}

func (o *Orchestrator) switchTab(_ context.Context, payload any) (Result, error) {
	tab, err := payloadAs[models.Tab](payload)
	if err != nil {
		return Result{}, err
	}
	if !tab.IsValid() {
		return Result{}, fmt.Errorf("%w: unknown tab %q", ErrInvalidPayload, tab)
	}

	o.mu.Lock()
	o.state.ActiveTab = tab
	o.mu.Unlock()
	return Result{}, nil
}

func (o *Orchestrator) toggleTheme(ctx context.Context, _ any) (Result, error) {
	o.mu.Lock()
	o.state.Theme = o.state.Theme.Toggled()
	theme := o.state.Theme
	o.mu.Unlock()

	if err := o.theme.Save(ctx, theme); err != nil {
		return inline(app.MsgThemeSaveFailed), err
	}
	return Result{}, nil
}

func (o *Orchestrator) uploadDocument(ctx context.Context, payload any) (Result, error) {
	req, err := payloadAs[UploadDocument](payload)
	if err != nil {
		return Result{}, err
	}

	if _, err := o.documents.Upload(ctx, req.Content, req.Filename); err != nil {
		return inline(service.UserMessage(err, app.MsgUploadFailed)), err
	}
	return info(fmt.Sprintf(app.MsgUploaded, req.Filename)), nil
}

func (o *Orchestrator) explainDocument(ctx context.Context, payload any) (Result, error) {
	docID, err := payloadAs[string](payload)
	if err != nil {
		return Result{}, err
	}

	res, err := o.documents.Explain(ctx, docID)
	switch {
	case err == nil:
		return Result{Explanation: &res}, nil
	case errors.Is(err, service.ErrDocumentNotFound):
		return inline(app.MsgDocumentUnknown), err
	default:
		return inline(service.UserMessage(err, app.MsgExplainFailed)), err
	}
}

func (o *Orchestrator) deleteDocument(ctx context.Context, payload any) (Result, error) {
	req, err := payloadAs[DeleteDocument](payload)
	if err != nil {
		return Result{}, err
	}

	err = o.documents.Delete(ctx, req.DocID, req.Confirmed)
	switch {
	case err == nil:
		return info(app.MsgDeleted), nil
	case errors.Is(err, service.ErrDeleteNotConfirmed):
		return Result{}, nil
	case errors.Is(err, service.ErrDocumentNotFound):
		return inline(app.MsgDocumentUnknown), err
	default:
		return inline(service.UserMessage(err, app.MsgDeleteFailed)), err
	}
}

func (o *Orchestrator) exportConversation(ctx context.Context, _ any) (Result, error) {
	id, ok := o.conversation.ID()
	if !ok {
		return info(app.MsgNothingToExport), nil
	}

	path, err := o.export.Export(ctx, id)
	if err != nil {
		return alert(service.UserMessage(err, app.MsgExportFailed)), err
	}

	res := info(fmt.Sprintf(app.MsgExported, path))
	res.ExportPath = path
	return res, nil
}

func (o *Orchestrator) refreshHealth(ctx context.Context, _ any) (Result, error) {
	o.ApplyHealth(o.health.Probe(ctx))
	return Result{}, nil
}

func (o *Orchestrator) generateQuiz(ctx context.Context, payload any) (Result, error) {
	req, err := payloadAs[models.QuizRequest](payload)
	if err != nil {
		return Result{}, err
	}

	quiz, err := o.quiz.GenerateQuiz(ctx, req)
	switch {
	case err == nil:
		return Result{Quiz: &quiz}, nil
	case errors.Is(err, service.ErrEmptyQuizTopic):
		return inline(app.MsgEmptyQuizTopic), nil
	case errors.Is(err, service.ErrQuizUnavailable):
		return info(app.MsgQuizUnavailable), nil
	default:
		return inline(service.UserMessage(err, app.MsgQuizUnavailable)), err
	}
}

func (o *Orchestrator) toggleDocumentsContext(context.Context, any) (Result, error) {
	use := !o.conversation.UseDocuments()
	o.conversation.SetUseDocuments(use)
	if use {
		return info(app.MsgDocumentsContextOn), nil
	}
	return info(app.MsgDocumentsContextOff), nil
}

func (o *Orchestrator) setMode(_ context.Context, payload any) (Result, error) {
	mode, err := payloadAs[models.ChatMode](payload)
	if err != nil {
		return Result{}, err
	}

	if err := o.conversation.SetMode(mode); err != nil {
		return inline(app.MsgInvalidMode), err
	}
	return info(fmt.Sprintf(app.MsgModeChanged, mode)), nil
}
