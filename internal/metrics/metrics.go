package metrics

const Namespace = "aspect"
