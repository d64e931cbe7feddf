package utils

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

func RabbitURL(env EnvVars) string {
	return fmt.Sprintf("amqp://%s:%s@%s:5672/", env.RabbitUser, env.RabbitPass, env.RabbitHost)
}

func DeclareQueue(name string, ch *amqp.Channel) (queue amqp.Queue, err error) {
	queue, err = ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return
	}
	if err = ch.Qos(1, 0, false); err != nil {
		return
	}
	return
}

// FailOnNack requeues a delivery that could not be handled.
func FailOnNack(d amqp.Delivery, err error) {
	WarnLog("queue", "Could not handle message: %v", err)
	// Message will be re-added to the queue
	if err = d.Nack(false, true); err != nil {
		WarnLog("queue", "Could not NACK to message queue: %v", err)
	}
}
