package metrics

const Namespace = "taskbot"
