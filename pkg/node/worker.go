package node

import (
	"context"
	"time"

	"github.com/lioia/corpus-pagerank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const contentType = "application/x-protobuf"

// Work consumes jobs from the work queue until ctx is done. Every job is
// answered on its reply-to queue, or on the result queue when it has none.
func (n *Node) Work(ctx context.Context) error {
	// Register consumer
	msgs, err := n.Queue.Channel.Consume(
		n.Queue.Work.Name, // queue
		n.Id,              // consumer
		false,             // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return errors.Wrapf(err, "could not register a consumer for %s queue", n.Queue.Work.Name)
	}
	utils.NodeLog("worker", "Registered consumer for queue %s", n.Queue.Work.Name)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.Errorf("%s queue closed", n.Queue.Work.Name)
			}
			n.workerHandleDelivery(ctx, d)
		}
	}
}

func (n *Node) workerHandleDelivery(ctx context.Context, d amqp.Delivery) {
	body, err := n.handleJob(d.Body)
	if err != nil {
		utils.FailOnNack(d, err)
		return
	}
	destination := d.ReplyTo
	if destination == "" {
		destination = n.Queue.Result.Name
	}
	// Publish result
	if err := n.publish(ctx, destination, d.CorrelationId, "", body); err != nil {
		utils.FailOnNack(d, err)
		return
	}
	// Ack
	if err := d.Ack(false); err != nil {
		utils.WarnLog("worker", "Could not ACK job %s: %v", d.CorrelationId, err)
	}
}

// handleJob decodes and computes a job and returns the encoded result.
// Jobs that cannot be computed produce a result carrying the error.
func (n *Node) handleJob(body []byte) ([]byte, error) {
	var result Result
	in := new(structpb.Struct)
	if err := protobuf.Unmarshal(body, in); err != nil {
		result.Error = errors.Wrap(ErrInvalidJob, err.Error()).Error()
	} else if job, err := jobFromStruct(in); err != nil {
		result = Result{Id: job.Id, Error: err.Error()}
	} else if result, err = n.Compute(job); err != nil {
		result.Error = err.Error()
	}
	if result.Error != "" {
		utils.WarnLog("worker", "Job %q failed: %s", result.Id, result.Error)
	}
	out, err := result.toStruct()
	if err != nil {
		return nil, errors.Wrap(err, "could not encode result")
	}
	return protobuf.Marshal(out)
}

// Submit publishes job on the work queue and waits for its result.
func (n *Node) Submit(ctx context.Context, job Job) (Result, error) {
	if job.Id == "" {
		id, err := gonanoid.New()
		if err != nil {
			return Result{}, errors.Wrap(err, "could not generate job id")
		}
		job.Id = id
	}
	// Exclusive, auto-deleted queue for the reply
	replies, err := n.Queue.Channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return Result{}, errors.Wrap(err, "could not declare reply queue")
	}
	msgs, err := n.Queue.Channel.Consume(replies.Name, "", true, true, false, false, nil)
	if err != nil {
		return Result{}, errors.Wrap(err, "could not consume reply queue")
	}

	in, err := job.toStruct()
	if err != nil {
		return Result{}, errors.Wrap(err, "could not encode job")
	}
	body, err := protobuf.Marshal(in)
	if err != nil {
		return Result{}, errors.Wrap(err, "could not encode job")
	}
	if err := n.publish(ctx, n.Queue.Work.Name, job.Id, replies.Name, body); err != nil {
		return Result{}, errors.Wrap(err, "could not publish job")
	}
	utils.NodeLog("client", "Submitted job %s to queue %s", job.Id, n.Queue.Work.Name)

	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return Result{}, errors.New("reply queue closed")
			}
			if d.CorrelationId != job.Id {
				continue
			}
			out := new(structpb.Struct)
			if err := protobuf.Unmarshal(d.Body, out); err != nil {
				return Result{}, errors.Wrap(err, "could not decode result")
			}
			result := resultFromStruct(out)
			if result.Error != "" {
				return result, errors.Errorf("job %s failed: %s", job.Id, result.Error)
			}
			return result, nil
		}
	}
}

func (n *Node) publish(ctx context.Context, queue, correlationId, replyTo string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return n.Queue.Channel.PublishWithContext(ctx,
		"",
		queue, // routing key
		false, // mandatory
		false,
		amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   contentType,
			CorrelationId: correlationId,
			ReplyTo:       replyTo,
			Body:          body,
		})
}
