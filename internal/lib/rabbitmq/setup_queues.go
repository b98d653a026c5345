package rabbitmq

// RoutingKeyPledgeCreated — ключ маршрутизации события о новом пледже.
const RoutingKeyPledgeCreated = "pledge.created"

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetPledgeQueues возвращает очереди, которые читают потребители событий о пледжах.
func GetPledgeQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "pledge.created.mail", RoutingKey: RoutingKeyPledgeCreated},
		{QueueName: "pledge.created.accounting", RoutingKey: RoutingKeyPledgeCreated},
	}
}
