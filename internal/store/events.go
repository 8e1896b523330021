package store

import (
	"context"
	"fmt"

	"github.com/realnamesareboring/certifai/ent"
	"github.com/realnamesareboring/certifai/ent/llmrequestevent"
	"github.com/realnamesareboring/certifai/ent/quizevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetCertificationID(data.CertificationID).
		SetDomain(data.Domain).
		SetQuestionCount(data.QuestionCount).
		SetUsedFallback(data.UsedFallback).
		SetScore(data.Score).
		SetPercentage(data.Percentage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = LLMEventRecord{
			LLMRequestEventData: LLMRequestEventData{
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = QuizEventRecord{
			QuizEventData: QuizEventData{
				Kind:            e.Kind,
				CertificationID: e.CertificationID,
				Domain:          e.Domain,
				QuestionCount:   e.QuestionCount,
				UsedFallback:    e.UsedFallback,
				Score:           e.Score,
				Percentage:      e.Percentage,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
